package server

import "dnf_rate/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server объединяет HTTP-сервера конкретных сущностей.
type Server struct {
	RateServer
}

func NewServer(
	rateServer RateServer,
) Server {
	return Server{
		RateServer: rateServer,
	}
}
