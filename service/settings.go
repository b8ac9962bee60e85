package service

import (
	"fmt"
	"net"
	"strconv"

	"ParallelMandelbrot/misc"
)

const DefaultPort = 51000

type Settings struct {
	ServerAddress string
}

func (s *Settings) String() string {
	output := "\nService settings\n"
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	return output
}

// Verify defaults the server address to this machine's first non-loopback address. A port of 0 is replaced
// with a free port so the address can be handed to clients.
func (s *Settings) Verify() error {
	if s.ServerAddress == "" {
		address, err := misc.GetLocalAddress()
		if err != nil {
			return err
		}
		s.ServerAddress = net.JoinHostPort(address, strconv.Itoa(DefaultPort))
	}

	host, port, err := net.SplitHostPort(s.ServerAddress)
	if err != nil {
		return fmt.Errorf("invalid server address %s - %w", s.ServerAddress, err)
	}
	if port == "0" {
		freePort, err := misc.GetFreePort()
		if err != nil {
			return err
		}
		s.ServerAddress = net.JoinHostPort(host, strconv.Itoa(freePort))
	}
	return nil
}
