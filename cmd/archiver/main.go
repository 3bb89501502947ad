package main

import (
	"context"
	"flag"
	"log"
	"time"

	"fedtools/pkg/config"
	"fedtools/pkg/db"
	"fedtools/pkg/fed"
)

// sinks holds the archiver's effective settings after flag overrides are
// applied on top of the YAML config.
type sinks struct {
	mongoURI   string
	database   string
	collection string

	pgDSN   string
	pgTable string
}

// mergeSinks fills empty flag values from the config file, then from the
// built-in defaults. A flag given on the command line always wins.
func mergeSinks(cfg *config.Config, flags sinks) sinks {
	out := flags
	if out.mongoURI == "" {
		out.mongoURI = cfg.Mongo.URI
	}
	if out.database == "" {
		out.database = cfg.Mongo.Database
	}
	if out.database == "" {
		out.database = "fedtools"
	}
	if out.collection == "" {
		out.collection = cfg.Mongo.Collection
	}
	if out.collection == "" {
		out.collection = "documents"
	}
	if out.pgDSN == "" {
		out.pgDSN = cfg.Postgres.DSN
	}
	if out.pgTable == "" {
		out.pgTable = cfg.Postgres.Table
	}
	if out.pgTable == "" {
		out.pgTable = "fed_releases"
	}
	return out
}

// archiver retrieves one document series and upserts every document into
// MongoDB and/or a relational store instead of a dataset file.
func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file (flags override it)")
		series     = flag.String("series", "", "Document series: beigebook, minutes or statements")
		startYear  = flag.Int("start-year", 0, "First year to discover (0 = series default)")
		workers    = flag.Int("workers", 0, "Concurrent fetch cap (0 = config default)")

		mongoURI   = flag.String("mongo-uri", "", "MongoDB connection string; empty disables the Mongo sink")
		dbName     = flag.String("db", "", "MongoDB database name")
		collection = flag.String("collection", "", "MongoDB collection name")

		pgDSN   = flag.String("pg-dsn", "", "Postgres DSN; empty disables the relational sink")
		pgTable = flag.String("pg-table", "", "Postgres releases table name")

		supaURL      = flag.String("supabase-url", "", "Supabase project URL; alternative relational sink when -pg-dsn is empty")
		supaKey      = flag.String("supabase-key", "", "Supabase service key; optional, enables the SDK client")
		supaPassword = flag.String("supabase-password", "", "Supabase database password")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *series != "" {
		cfg.Series = *series
	}
	if *startYear != 0 {
		cfg.StartYear = *startYear
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}

	snk := mergeSinks(cfg, sinks{
		mongoURI:   *mongoURI,
		database:   *dbName,
		collection: *collection,
		pgDSN:      *pgDSN,
		pgTable:    *pgTable,
	})
	if snk.mongoURI == "" && snk.pgDSN == "" && *supaURL == "" {
		log.Fatal("At least one sink is required: -mongo-uri, -pg-dsn or -supabase-url (or the config file equivalents)")
	}

	ctx := context.Background()

	def, err := fed.SeriesByName(cfg.Series)
	if err != nil {
		log.Fatalf("Failed to resolve series: %v", err)
	}

	opts := []fed.Option{fed.WithWorkers(cfg.Workers), fed.WithVerbose(true)}
	if cfg.StartYear != 0 {
		opts = append(opts, fed.WithStartYear(cfg.StartYear))
	}
	client, err := fed.New(def, opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	start := time.Now()
	docs, err := client.RetrieveDocuments(ctx)
	if err != nil {
		log.Fatalf("Retrieval failed: %v", err)
	}
	log.Printf("Retrieved %d documents in %s", len(docs), time.Since(start).Round(time.Second))

	if snk.mongoURI != "" {
		mongoClient, err := db.NewMongoClient(snk.mongoURI, snk.database, snk.collection)
		if err != nil {
			log.Fatalf("Failed to create mongo client: %v", err)
		}
		if err := mongoClient.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to mongo: %v", err)
		}
		defer mongoClient.Close(ctx)

		for i := range docs {
			if err := mongoClient.SaveDocument(ctx, &docs[i]); err != nil {
				log.Fatalf("Failed to save to mongo: %v", err)
			}
		}
		log.Printf("Archived %d documents to mongo collection %s.%s", len(docs), snk.database, snk.collection)
	}

	var provider db.DBProvider
	switch {
	case snk.pgDSN != "":
		pg := db.NewPostgresClient(db.PostgresConfig{DSN: snk.pgDSN})
		if err := pg.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pg.Close()
		provider = pg
	case *supaURL != "":
		sc := db.NewSupabaseClient(db.SupabaseConfig{
			SupabaseURL: *supaURL,
			SupabaseKey: *supaKey,
			Password:    *supaPassword,
		})
		if err := sc.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to supabase: %v", err)
		}
		defer sc.Close()
		provider = sc
	}

	if provider != nil {
		store := db.NewStore(provider, snk.pgTable)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		for i := range docs {
			if err := store.SaveDocument(ctx, &docs[i]); err != nil {
				log.Fatalf("Failed to save to postgres: %v", err)
			}
		}
		log.Printf("Archived %d documents to table %s", len(docs), snk.pgTable)
	}
}
