package testutils

import (
	"context"
	"log"
	"time"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgres starts a throwaway postgres container and returns a gorm
// handle plus a cleanup func. Callers run migrations themselves so each
// suite controls its own schema.
func SetupPostgres() (*gorm.DB, func()) {
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:15",
		tcpostgres.WithDatabase("portal"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatal(err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatal(err)
	}

	var gormDB *gorm.DB
	for i := 0; i < 10; i++ {
		gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}
