package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/signup", handler.SignUp)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/members", handler.ListTeamMembers)
	mux.HandleFunc("GET /v1/teams/{teamID}/matches", handler.ListTeamMatches)

	mux.HandleFunc("GET /v1/venues/nearby", handler.SearchNearbyVenues)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches", handler.ListLeagueSchedule)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("POST /v1/teams/{teamID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinTeam)))
	mux.Handle("POST /v1/teams/{teamID}/leave", RequireAuth(verifier, http.HandlerFunc(handler.LeaveTeam)))

	mux.Handle("POST /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.ScheduleMatch)))
	mux.Handle("POST /v1/matches/{matchID}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordMatchResult)))
	mux.Handle("POST /v1/matches/{matchID}/venue", RequireAuth(verifier, http.HandlerFunc(handler.BookMatchVenue)))

	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/leagues/{leagueID}/teams/{teamID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
}
