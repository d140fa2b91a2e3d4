package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService() *Service {
	return NewService(Config{
		AdminUsername: "admin",
		AdminPassword: "correct-horse",
		Secret:        testSecret,
	})
}

func TestAuthenticate(t *testing.T) {
	svc := testService()

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct credentials", "admin", "correct-horse", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "correct-horse", false},
		{"case-sensitive username", "Admin", "correct-horse", false},
		{"case-sensitive password", "admin", "Correct-Horse", false},
		{"empty credentials", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := svc.Authenticate(tt.username, tt.password)
			if (p != nil) != tt.want {
				t.Errorf("Authenticate(%q, %q) = %v, want authenticated=%v", tt.username, tt.password, p, tt.want)
			}
			if p != nil && (!p.IsAdmin || p.Username != "admin") {
				t.Errorf("principal = %+v, want admin principal", p)
			}
		})
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := testService()

	principal := svc.Authenticate("admin", "correct-horse")
	if principal == nil {
		t.Fatal("Authenticate failed with correct credentials")
	}

	token, err := svc.IssueToken(principal)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	got, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if got.Username != "admin" || !got.IsAdmin {
		t.Errorf("principal = %+v, want {admin true}", got)
	}

	// Issued token expiry is 24h from now.
	p, err := Decode(token, testSecret)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wantExp := time.Now().Add(TokenTTL).Unix()
	if p.Exp < wantExp-5 || p.Exp > wantExp+5 {
		t.Errorf("exp = %d, want ~%d", p.Exp, wantExp)
	}
}

func TestVerifyToken_FailClosed(t *testing.T) {
	svc := testService()

	nonAdmin, err := Encode(Payload{
		Username: "admin",
		IsAdmin:  false,
		Exp:      time.Now().Add(time.Hour).Unix(),
	}, testSecret)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expired, err := Encode(Payload{
		Username: "admin",
		IsAdmin:  true,
		Exp:      time.Now().Add(-time.Hour).Unix(),
	}, testSecret)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty token", "", ErrMalformedToken},
		{"garbage token", "not-a-token", ErrMalformedToken},
		{"expired token", expired, ErrTokenExpired},
		{"non-admin payload", nonAdmin, ErrNotAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.VerifyToken(tt.token)
			if p != nil {
				t.Errorf("principal = %+v, want nil", p)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenCookieHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	SetTokenCookie(w, "tok123", false)

	resp := w.Result()
	cookies := resp.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookie count = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "tok123" {
		t.Errorf("cookie = %s=%s, want %s=tok123", c.Name, c.Value, CookieName)
	}
	if !c.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}

	// Round-trip through a request.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	if got := TokenFromRequest(req); got != "tok123" {
		t.Errorf("TokenFromRequest = %q, want tok123", got)
	}

	// Clearing expires the cookie.
	w2 := httptest.NewRecorder()
	ClearTokenCookie(w2)
	cleared := w2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("cleared cookie = %+v, want MaxAge < 0", cleared)
	}

	// No cookie at all.
	if got := TokenFromRequest(httptest.NewRequest(http.MethodGet, "/", nil)); got != "" {
		t.Errorf("TokenFromRequest with no cookie = %q, want empty", got)
	}
}
