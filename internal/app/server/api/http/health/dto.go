package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Service string `json:"service" example:"itemkeeper" doc:"Service name"`
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
}
