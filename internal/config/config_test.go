package config_test

import (
	"errors"
	"testing"

	"github.com/okian/bikeshare/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			convey.So(cfg.DataDir, convey.ShouldEqual, ".")
			convey.So(cfg.PageSize, convey.ShouldEqual, 5)
			convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
			convey.So(cfg.Months, convey.ShouldResemble, []string{"1", "2", "3", "4", "5", "6"})
			convey.So(cfg.Cities, convey.ShouldResemble, map[string]string{
				"chicago":       "chicago.csv",
				"new york city": "new_york_city.csv",
				"washington":    "washington.csv",
			})
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty data dir", func(c *config.Config) { c.DataDir = "" }},
			{"no cities", func(c *config.Config) { c.Cities = nil }},
			{"city without file", func(c *config.Config) { c.Cities["boston"] = "" }},
			{"no months", func(c *config.Config) { c.Months = nil }},
			{"month out of range", func(c *config.Config) { c.Months = []string{"13"} }},
			{"month with leading zero", func(c *config.Config) { c.Months = []string{"01"} }},
			{"month as a name", func(c *config.Config) { c.Months = []string{"july"} }},
			{"duplicate month", func(c *config.Config) { c.Months = []string{"1", "1"} }},
			{"zero page size", func(c *config.Config) { c.PageSize = 0 }},
		}

		for _, tc := range cases {
			convey.Convey("When the config has "+tc.name, func() {
				tc.mutate(cfg)
				err := cfg.Validate()

				convey.Convey("Then validation fails with ErrInvalidConfig", func() {
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}

		convey.Convey("When all twelve months are allowed", func() {
			cfg.Months = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

			convey.Convey("Then the config is valid", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})
	})
}
