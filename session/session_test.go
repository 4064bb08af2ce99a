package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(captured *User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identify())
	r.GET("/", func(c *gin.Context) {
		user, ok := FromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = user
		c.Status(http.StatusOK)
	})
	return r
}

func TestIdentifyIssuesCookie(t *testing.T) {
	var user User
	router := newTestRouter(&user)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if user == "" {
		t.Fatal("Expected an identity to be issued")
	}

	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == CookieName && cookie.Value == user.String() {
			found = true
		}
	}
	if !found {
		t.Error("The issued identity should be set as the session cookie")
	}
}

func TestIdentifyKeepsExistingIdentity(t *testing.T) {
	var user User
	router := newTestRouter(&user)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "returning-caller"})
	router.ServeHTTP(w, req)

	if user != User("returning-caller") {
		t.Errorf("Expected the cookie identity to be kept, got %q", user)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == CookieName {
			t.Error("A returning caller should not be issued a new cookie")
		}
	}
}

func TestGenerateIsUnique(t *testing.T) {
	if Generate() == Generate() {
		t.Error("Two generated identities should differ")
	}
}
