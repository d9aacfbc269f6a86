package tripgen

import (
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/okian/bikeshare/internal/domain/model"
	"github.com/okian/bikeshare/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

func TestHeader(t *testing.T) {
	Convey("Given the city specs", t, func() {
		Convey("Then demographic cities carry Gender and Birth Year", func() {
			h := header(cities[0])
			So(h[0], ShouldBeEmpty)
			So(h, ShouldContain, model.ColGender)
			So(h, ShouldContain, model.ColBirthYear)
			for _, col := range model.RequiredColumns {
				So(h, ShouldContain, col)
			}
		})

		Convey("Then Washington does not", func() {
			h := header(cities[2])
			So(cities[2].Name, ShouldEqual, "washington")
			So(h, ShouldNotContain, model.ColGender)
			So(h, ShouldNotContain, model.ColBirthYear)
		})
	})
}

func TestGenerateRows(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		rows := generateRows(cities[0], 200, newRand(7, 0))

		Convey("Then rows have one cell per column", func() {
			So(rows, ShouldHaveLength, 200)
			for _, r := range rows {
				So(r, ShouldHaveLength, len(header(cities[0])))
			}
		})

		Convey("Then start times fall in the first half of 2017", func() {
			for _, r := range rows {
				ts, err := time.Parse(time.DateTime, r[1])
				So(err, ShouldBeNil)
				So(ts.Before(periodStart), ShouldBeFalse)
				So(ts.Before(periodEnd), ShouldBeTrue)
			}
		})

		Convey("Then durations are whole seconds in range", func() {
			for _, r := range rows {
				d, err := strconv.Atoi(r[3])
				So(err, ShouldBeNil)
				So(d, ShouldBeBetweenOrEqual, minDurationSeconds, maxDurationSeconds)
			}
		})

		Convey("Then birth years look like the published files", func() {
			for _, r := range rows {
				if r[8] != "" {
					So(strings.HasSuffix(r[8], ".0"), ShouldBeTrue)
				}
			}
		})

		Convey("Then the same seed gives the same rows", func() {
			So(generateRows(cities[0], 200, newRand(7, 0)), ShouldResemble, rows)
		})

		Convey("Then another city index gives another stream", func() {
			So(generateRows(cities[0], 200, newRand(7, 1)), ShouldNotResemble, rows)
		})
	})

	Convey("Given Washington", t, func() {
		rows := generateRows(cities[2], 50, newRand(7, 2))

		Convey("Then durations parse as numbers and rows stop at User Type", func() {
			for _, r := range rows {
				So(r, ShouldHaveLength, 7)
				_, err := strconv.ParseFloat(r[3], 64)
				So(err, ShouldBeNil)
			}
		})
	})
}
