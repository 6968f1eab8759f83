package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/server/portfolio"
	"github.com/dmitrijs2005/cryptotracker/internal/shared"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type exchangeRequest struct {
	Exchange  string `json:"exchange"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

func makeHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}
}

func makeLoginHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		password := []byte(req.Password)
		defer shared.WipeByteArray(password)

		token, err := s.users.Login(r.Context(), req.Email, password)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

func makeRegisterHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		password := []byte(req.Password)
		defer shared.WipeByteArray(password)

		token, err := s.users.Register(r.Context(), req.Name, req.Email, password)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
	}
}

func makeForgotPasswordHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.users.ForgotPassword(r.Context(), req.Email); err != nil {
			s.fail(w, r, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func makeResetPasswordHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token    string `json:"token"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		password := []byte(req.Password)
		defer shared.WipeByteArray(password)

		token, err := s.users.ResetPassword(r.Context(), req.Token, password)
		if err != nil {
			// an unusable reset token is a bad request, not a session problem
			if code := statusFor(err); code == http.StatusUnauthorized {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

func makeMeHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := s.users.Profile(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profileBody{Name: u.Name, Email: u.Email})
	}
}

func makeUpdateMeHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileBody
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.users.UpdateProfile(r.Context(), userIDFromContext(r.Context()), req.Name, req.Email); err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func makeHoldingsHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.portfolio.Holdings(r.Context(), userIDFromContext(r.Context())))
	}
}

func makeTradesHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.portfolio.Trades(r.Context(), userIDFromContext(r.Context())))
	}
}

func makePnLHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.portfolio.PnL(r.Context(), userIDFromContext(r.Context())))
	}
}

func makeAddExchangeHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req exchangeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.Exchange = strings.ToUpper(strings.TrimSpace(req.Exchange))
		if req.Exchange == "" || strings.TrimSpace(req.APIKey) == "" || strings.TrimSpace(req.APISecret) == "" {
			writeError(w, http.StatusBadRequest, "exchange, API key & secret required")
			return
		}

		s.portfolio.AddExchange(r.Context(), userIDFromContext(r.Context()), portfolio.Exchange{
			Exchange:  req.Exchange,
			APIKey:    req.APIKey,
			APISecret: req.APISecret,
		})
		writeJSON(w, http.StatusCreated, map[string]string{"exchange": req.Exchange})
	}
}
