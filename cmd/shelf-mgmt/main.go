package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/devicemanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/organizations"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/productmanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/shelfmanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/router"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "shelf-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	seedFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile: "/opt/shelfware/config/authz.rego",
		seedFile:     "/opt/shelfware/config/seed.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "shelfware",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "failed to initialize database")

	if seed, err := os.Open(flags[seedFile]); err == nil {
		err = storage.Seed(ctx, s, seed)
		seed.Close()
		exitIf(err, logger, "failed to seed database")
	} else {
		logger.Info("no seed file found, skipping", "path", flags[seedFile])
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	sm := shelfmanagement.New(s)
	pm := productmanagement.New(s)
	dm := devicemanagement.New(s, messenger)
	om := organizations.New(s)

	messenger.Start()

	err = dm.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register topic message handler")

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, sm, pm, dm, om)
	exitIf(err, logger, "failed to register api handlers")

	apiAddress := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info("starting to listen for incoming connections", "address", apiAddress)

	err = http.ListenAndServe(apiAddress, r)
	exitIf(err, logger, "failed to start request router")
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[seedFile] = envOrDef(ctx, "SEED_FILE", flags[seedFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("seed", "organizations, shelves and products to seed at startup", apply(seedFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
