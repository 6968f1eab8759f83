package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func setupRouting(s *Server, r *mux.Router) *mux.Router {
	r.HandleFunc("/health", makeHealthHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", makeLoginHandler(s)).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", makeRegisterHandler(s)).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", makeForgotPasswordHandler(s)).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", makeResetPasswordHandler(s)).Methods(http.MethodPost)

	api.Handle("/auth/me", s.requireUser(makeMeHandler(s))).Methods(http.MethodGet)
	api.Handle("/auth/me", s.requireUser(makeUpdateMeHandler(s))).Methods(http.MethodPut)
	api.Handle("/holdings", s.requireUser(makeHoldingsHandler(s))).Methods(http.MethodGet)
	api.Handle("/trades", s.requireUser(makeTradesHandler(s))).Methods(http.MethodGet)
	api.Handle("/pnl", s.requireUser(makePnLHandler(s))).Methods(http.MethodGet)
	api.Handle("/add-exchange/exchanges", s.requireUser(makeAddExchangeHandler(s))).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
