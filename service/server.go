package service

import (
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"

	"ParallelMandelbrot/mandelbrot"
)

// Server runs a RenderService on a tcp rpc server.
type Server struct {
	server  multirpc.TcpServer
	service *RenderService

	Logger bslogger.Logger
}

func NewServer(settings Settings, workerCount int) *Server {
	service := NewRenderService(workerCount)
	return &Server{
		server:  multirpc.NewTcpServer(service, settings.ServerAddress, "RenderServer"),
		service: service,
		Logger:  bslogger.NewLogger("RenderServer", bslogger.Normal, nil),
	}
}

func (s *Server) Run() error {
	return s.server.Run()
}

func (s *Server) Stop() error {
	return s.server.Stop()
}

// RequestImage asks the render server at address for an image and returns it.
func RequestImage(address string, settings mandelbrot.Settings, superSampling int) (*RenderReply, error) {
	client := multirpc.NewTcpClient(address, "RenderClient")
	if err := client.Connect(); err != nil {
		return nil, err
	}
	defer client.Disconnect()

	request := RenderRequest{
		MandelbrotSettings: settings,
		SuperSampling:      superSampling,
	}
	var reply RenderReply
	if err := client.Call("RenderService.Render", request, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
