package ui

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"formatDatePtr": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"categoryLabel": func(c string) string {
		switch c {
		case "ml":
			return "Machine Learning"
		case "fullstack":
			return "Full Stack"
		case "backend":
			return "Backend"
		default:
			return "Other"
		}
	},
}

func (ui *UI) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderTemplate(w, name, data); err != nil {
		ui.logger.Error("render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderTemplate renders a page template inside the shared layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(templates["layout"])
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content %s: %w", name, err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content. In a larger app these would be
// loaded from files.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="/static/css/site.css">
</head>
<body>
    {{template "content" .}}
</body>
</html>`,

	"home": `<main class="container">
    <header class="hero">
        <h1>Projects</h1>
    </header>
    <section class="projects">
        {{range .Projects}}
        <article class="project-card">
            <h2><a href="{{.GitHubURL}}">{{.Title}}</a></h2>
            <p>{{.Description}}</p>
            <ul class="meta">
                <li>{{categoryLabel (printf "%s" .Category)}}</li>
                {{if .Language}}<li>{{.Language}}</li>{{end}}
                <li>&#9733; {{.Stars}}</li>
                <li>Forks: {{.Forks}}</li>
            </ul>
            {{if .Homepage}}<a class="homepage" href="{{.Homepage}}">Live site</a>{{end}}
        </article>
        {{else}}
        <p class="empty">Nothing here yet.</p>
        {{end}}
    </section>
</main>`,

	"login": `<main class="container login">
    <h1>Admin Login</h1>
    <form id="login-form">
        <label>Username <input type="text" name="username" autocomplete="username" required></label>
        <label>Password <input type="password" name="password" autocomplete="current-password" required></label>
        <button type="submit">Sign in</button>
        <p id="login-error" class="error" hidden></p>
    </form>
    <script>
    document.getElementById("login-form").addEventListener("submit", async (e) => {
        e.preventDefault();
        const form = new FormData(e.target);
        const resp = await fetch("/api/admin/login", {
            method: "POST",
            headers: {"Content-Type": "application/json"},
            body: JSON.stringify({username: form.get("username"), password: form.get("password")}),
        });
        if (resp.ok) {
            window.location.href = {{.Redirect}};
        } else {
            const body = await resp.json().catch(() => ({}));
            const el = document.getElementById("login-error");
            el.textContent = body.error || "Login failed";
            el.hidden = false;
        }
    });
    </script>
</main>`,

	"dashboard": `<main class="container dashboard">
    <header>
        <h1>Admin Dashboard</h1>
        {{if .Principal}}<p>Signed in as {{.Principal.Username}}</p>{{end}}
        <button id="sync-btn">Sync GitHub</button>
        <button id="logout-btn">Log out</button>
    </header>
    <table class="projects-table">
        <thead>
            <tr><th>Title</th><th>Category</th><th>Stars</th><th>Visible</th><th>Updated</th><th></th></tr>
        </thead>
        <tbody>
            {{range .Projects}}
            <tr data-id="{{.ID}}">
                <td><a href="{{.GitHubURL}}">{{.Title}}</a></td>
                <td>{{categoryLabel (printf "%s" .Category)}}</td>
                <td>{{.Stars}}</td>
                <td>{{if .IsVisible}}yes{{else}}no{{end}}</td>
                <td>{{formatDate .UpdatedAt}}</td>
                <td>
                    <button class="toggle">Toggle</button>
                    <button class="delete">Delete</button>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="6">No projects. Run a sync.</td></tr>
            {{end}}
        </tbody>
    </table>
    <script>
    const reload = () => window.location.reload();
    document.getElementById("sync-btn").addEventListener("click", async () => {
        await fetch("/api/sync-github", {method: "POST"});
        reload();
    });
    document.getElementById("logout-btn").addEventListener("click", async () => {
        await fetch("/api/admin/logout", {method: "POST"});
        window.location.href = "/admin/login";
    });
    document.querySelectorAll("tr[data-id]").forEach((row) => {
        const id = row.dataset.id;
        row.querySelector(".toggle").addEventListener("click", async () => {
            await fetch("/api/projects/" + id + "/toggle-visibility", {method: "POST"});
            reload();
        });
        row.querySelector(".delete").addEventListener("click", async () => {
            if (!confirm("Delete this project?")) return;
            await fetch("/api/projects/" + id, {method: "DELETE"});
            reload();
        });
    });
    </script>
</main>`,
}
