package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/theme"
)

// openStore opens the theme preference store chosen by STORE_DRIVER.
func openStore(ctx context.Context, c config.Config) (theme.Store, error) {
	switch c.StoreDriver {
	case config.DriverSqlite:
		logrus.Printf("Preferences stored in sqlite at %s", c.DBPath)
		return theme.OpenSqlite(ctx, c.DBPath)
	case config.DriverRedis:
		s := theme.NewRedis(c.RedisAddr, c.RedisPassword, c.RedisDB)
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("redis at %s: %w", c.RedisAddr, err)
		}
		logrus.Printf("Preferences stored in redis at %s", c.RedisAddr)
		return s, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
}
