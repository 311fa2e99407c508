package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/users/register", handler.RegisterUser)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	authorized := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, RequireAuth(verifier, h))
	}

	authorized("POST /api/teams", handler.CreateTeam)
	authorized("GET /api/teams", handler.ListTeams)
	authorized("GET /api/teams/{teamID}", handler.GetTeam)
	authorized("PUT /api/teams/{teamID}", handler.UpdateTeam)
	authorized("DELETE /api/teams/{teamID}", handler.DeleteTeam)

	authorized("POST /api/players", handler.CreatePlayer)
	authorized("GET /api/players", handler.ListPlayers)
	authorized("GET /api/players/{playerID}", handler.GetPlayer)
	authorized("PUT /api/players/{playerID}", handler.UpdatePlayer)
	authorized("DELETE /api/players/{playerID}", handler.DeletePlayer)
	authorized("POST /api/teams/{teamID}/players/{playerID}", handler.AddPlayerToTeam)
	authorized("DELETE /api/teams/{teamID}/players/{playerID}", handler.RemovePlayerFromTeam)

	authorized("POST /api/divisions", handler.CreateDivision)
	authorized("GET /api/divisions", handler.ListDivisions)
	authorized("GET /api/divisions/{divisionID}", handler.GetDivision)
	authorized("PUT /api/divisions/{divisionID}", handler.UpdateDivision)
	authorized("DELETE /api/divisions/{divisionID}", handler.DeleteDivision)

	authorized("GET /api/users", handler.ListUsers)
	authorized("GET /api/users/{userID}", handler.GetUser)
	authorized("PUT /api/users/{userID}", handler.UpdateUser)
	authorized("DELETE /api/users/{userID}", handler.DeleteUser)

	authorized("POST /api/matches", handler.CreateMatch)
	authorized("GET /api/matches", handler.ListMatches)
	authorized("GET /api/matches/{matchID}", handler.GetMatch)
	authorized("PUT /api/matches/{matchID}", handler.UpdateMatch)
	authorized("DELETE /api/matches/{matchID}", handler.DeleteMatch)
	authorized("POST /api/matches/{matchID}/attendance", handler.RecordMatchAttendance)

	authorized("POST /api/attendance", handler.CreateAttendance)
	authorized("GET /api/attendance", handler.ListAttendance)
	authorized("GET /api/attendance/{recordID}", handler.GetAttendance)
	authorized("PUT /api/attendance/{recordID}", handler.UpdateAttendance)
	authorized("DELETE /api/attendance/{recordID}", handler.DeleteAttendance)

	authorized("POST /api/formations", handler.CreateFormation)
	authorized("GET /api/formations", handler.ListFormations)
	authorized("GET /api/formations/{formationID}", handler.GetFormation)
	authorized("PUT /api/formations/{formationID}", handler.UpdateFormation)
	authorized("DELETE /api/formations/{formationID}", handler.DeleteFormation)

	authorized("POST /api/payments", handler.CreatePayment)
	authorized("GET /api/payments", handler.ListPayments)
	authorized("GET /api/payments/{paymentID}", handler.GetPayment)
	authorized("PUT /api/payments/{paymentID}", handler.UpdatePayment)
	authorized("DELETE /api/payments/{paymentID}", handler.DeletePayment)
	authorized("POST /api/payments/{paymentID}/mark-paid", handler.MarkPaymentPaid)

	authorized("POST /api/messages", handler.CreateMessage)
	authorized("GET /api/messages", handler.ListMessages)
	authorized("GET /api/messages/{messageID}", handler.GetMessage)
	authorized("PUT /api/messages/{messageID}", handler.UpdateMessage)
	authorized("DELETE /api/messages/{messageID}", handler.DeleteMessage)
	authorized("POST /api/messages/{messageID}/send", handler.SendMessage)
	authorized("GET /api/messages/{messageID}/recipients", handler.ListMessageRecipients)

	authorized("POST /api/predictions", handler.CreatePrediction)
	authorized("GET /api/predictions", handler.ListPredictions)
	authorized("GET /api/predictions/{predictionID}", handler.GetPrediction)
	authorized("PUT /api/predictions/{predictionID}", handler.UpdatePrediction)
	authorized("DELETE /api/predictions/{predictionID}", handler.DeletePrediction)

	authorized("POST /api/reports", handler.CreateReport)
	authorized("GET /api/reports", handler.ListReports)
	authorized("GET /api/reports/{reportID}", handler.GetReport)
	authorized("PUT /api/reports/{reportID}", handler.UpdateReport)
	authorized("DELETE /api/reports/{reportID}", handler.DeleteReport)

	authorized("POST /api/statistics", handler.CreateStatistic)
	authorized("GET /api/statistics", handler.ListStatistics)
	authorized("GET /api/statistics/{statisticID}", handler.GetStatistic)
	authorized("PUT /api/statistics/{statisticID}", handler.UpdateStatistic)
	authorized("DELETE /api/statistics/{statisticID}", handler.DeleteStatistic)
	authorized("GET /api/players/{playerID}/statistics/season/{season}", handler.GetPlayerSeasonSummary)
}
