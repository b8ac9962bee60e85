package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
	"github.com/pkg/profile"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/export"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/service"
)

func main() {
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)

	args, err := parseArguments(os.Args[1:])
	misc.CheckError(err, logger, misc.Fatal)

	settings, err := coordinator.LoadSettings(args.settingsFile)
	misc.CheckError(err, logger, misc.Fatal)
	misc.CheckError(args.apply(&settings), logger, misc.Fatal)
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	if args.gops {
		misc.CheckError(agent.Listen(agent.Options{ShutdownCleanup: true}), logger, misc.Warning)
		defer agent.Close()
	}
	if args.profile != "" {
		mode, err := profileMode(args.profile)
		misc.CheckError(err, logger, misc.Fatal)
		defer profile.Start(mode, profile.ProfilePath(settings.RunDirectory())).Stop()
	}

	switch {
	case args.serve:
		serve(logger, args, settings)
	case args.remote != "":
		path, err := renderRemote(args.remote, settings)
		misc.CheckError(err, logger, misc.Fatal)
		logger.Infof("Saved image rendered by %s to %s", args.remote, path)
	default:
		_, err := coordinator.Run(settings)
		misc.CheckError(err, logger, misc.Fatal)
	}
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile %q, expected cpu, mem or trace", name)
}

// serve runs the render service until the process is interrupted.
func serve(logger bslogger.Logger, args arguments, settings coordinator.Settings) {
	serviceSettings := service.Settings{ServerAddress: args.address}
	misc.CheckError(serviceSettings.Verify(), logger, misc.Fatal)
	logger.Debug(serviceSettings.String())

	server := service.NewServer(serviceSettings, settings.WorkerCount)
	misc.CheckError(server.Run(), logger, misc.Fatal)
	logger.Infof("Serving renders at %s", serviceSettings.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	logger.Info("Shutting down")
	misc.CheckError(server.Stop(), logger, misc.Warning)
}

// renderRemote has the server at address render the image and writes it to the run directory.
func renderRemote(address string, settings coordinator.Settings) (string, error) {
	reply, err := service.RequestImage(address, settings.MandelbrotSettings, settings.SuperSampling)
	if err != nil {
		return "", err
	}
	if reply.Width == 0 || reply.Height == 0 {
		return "", fmt.Errorf("server at %s returned an empty image", address)
	}

	path := settings.OutputPath()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create folder %s - %w", filepath.Dir(path), err)
	}
	if err := export.WriteFile(path, reply.Image()); err != nil {
		return "", err
	}
	return path, nil
}
