package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
)

type loginRequest struct {
	Password string `json:"password"`
}

type authStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (s *Server) authStatus(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if c, err := r.Cookie(common.AuthCookieName); err == nil {
		authenticated = s.svc.Auth.Authenticated(c.Value)
	}
	writeJSON(w, http.StatusOK, authStatusResponse{Authenticated: authenticated})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	token, err := s.svc.Auth.Login(req.Password)
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		s.logger.Warn(r.Context(), "login rejected")
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		s.writeError(w, r, err, "")
		return
	}

	http.SetCookie(w, s.authCookie(token, int(s.svc.Auth.Validity().Seconds())))
	writeSuccess(w)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.authCookie("", -1))
	writeSuccess(w)
}

func (s *Server) authCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
