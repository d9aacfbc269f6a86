package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/okian/bikeshare/internal/adapters/repository"
	"github.com/okian/bikeshare/internal/app"
	"github.com/okian/bikeshare/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type memoryStore struct {
	data  map[string]*model.Dataset
	err   error
	calls int
}

func (m *memoryStore) Load(_ context.Context, city string) (*model.Dataset, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	ds, ok := m.data[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrSourceUnavailable, city)
	}
	return ds, nil
}

func trip(ts string) model.TripRecord {
	t, err := time.Parse(time.DateTime, ts)
	if err != nil {
		panic(err)
	}
	r := model.TripRecord{StartTime: t, StartStation: "A", EndStation: "B", Duration: 60, UserType: "Subscriber"}
	r.Derive()
	return r
}

func TestLoader_Load(t *testing.T) {
	Convey("Given a store holding Chicago trips", t, func() {
		store := &memoryStore{data: map[string]*model.Dataset{
			"chicago": {
				City:   "chicago",
				Schema: model.Schema{HasGender: true, HasBirthYear: true},
				Records: []model.TripRecord{
					trip("2017-01-02 08:00:00"),
					trip("2017-02-06 09:00:00"),
					trip("2017-01-10 10:00:00"),
				},
			},
		}}
		loader := app.NewLoader(store, app.WithLoaderClock(time.Now), app.WithLoaderLogger(nil))
		ctx := context.Background()

		Convey("When loading January", func() {
			ds, err := loader.Load(ctx, model.FilterSelection{City: "chicago", Month: "1", Day: model.All})

			Convey("Then only January records are returned in order", func() {
				So(err, ShouldBeNil)
				So(ds.Len(), ShouldEqual, 2)
				So(ds.Records[0].StartTime.Day(), ShouldEqual, 2)
				So(ds.Records[1].StartTime.Day(), ShouldEqual, 10)
				So(ds.Schema.HasGender, ShouldBeTrue)
			})
		})

		Convey("When loading Monday trips in January", func() {
			ds, err := loader.Load(ctx, model.FilterSelection{City: "chicago", Month: "1", Day: "0"})

			Convey("Then both filters apply", func() {
				So(err, ShouldBeNil)
				So(ds.Len(), ShouldEqual, 1)
			})
		})

		Convey("When loading the same selection twice", func() {
			sel := model.FilterSelection{City: "chicago", Month: model.All, Day: model.All}
			a, _ := loader.Load(ctx, sel)
			b, _ := loader.Load(ctx, sel)

			Convey("Then the results are equal and the source is read each time", func() {
				So(a, ShouldResemble, b)
				So(store.calls, ShouldEqual, 2)
			})
		})

		Convey("When the source file is missing", func() {
			_, err := loader.Load(ctx, model.FilterSelection{City: "washington", Month: model.All, Day: model.All})

			Convey("Then ErrLoad wraps the store error", func() {
				So(errors.Is(err, app.ErrLoad), ShouldBeTrue)
				So(errors.Is(err, repository.ErrSourceUnavailable), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "washington")
			})
		})

		Convey("When the source is malformed", func() {
			store.err = fmt.Errorf("%w: line 3", repository.ErrMalformedSource)
			_, err := loader.Load(ctx, model.FilterSelection{City: "chicago", Month: model.All, Day: model.All})

			Convey("Then ErrLoad wraps ErrMalformedSource", func() {
				So(errors.Is(err, app.ErrLoad), ShouldBeTrue)
				So(errors.Is(err, repository.ErrMalformedSource), ShouldBeTrue)
			})
		})
	})
}
