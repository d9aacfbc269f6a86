package model_test

import (
	"testing"
	"time"

	"github.com/okian/bikeshare/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func trip(ts string) model.TripRecord {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	r := model.TripRecord{StartTime: t, StartStation: "A", EndStation: "B", Duration: 60, UserType: "Subscriber"}
	r.Derive()
	return r
}

func TestDerive(t *testing.T) {
	Convey("Given trips on known dates", t, func() {
		Convey("When the trip starts on Monday 2 January 2017", func() {
			r := trip("2017-01-02 08:15:00")

			Convey("Then month is 1 and weekday is 0", func() {
				So(r.Month, ShouldEqual, 1)
				So(r.Weekday, ShouldEqual, 0)
			})
		})

		Convey("When the trip starts on Sunday 25 June 2017", func() {
			r := trip("2017-06-25 23:59:59")

			Convey("Then month is 6 and weekday is 6", func() {
				So(r.Month, ShouldEqual, 6)
				So(r.Weekday, ShouldEqual, 6)
			})
		})
	})
}

func TestMondayWeekday(t *testing.T) {
	Convey("Given every time.Weekday", t, func() {
		want := map[time.Weekday]int{
			time.Monday: 0, time.Tuesday: 1, time.Wednesday: 2, time.Thursday: 3,
			time.Friday: 4, time.Saturday: 5, time.Sunday: 6,
		}
		for wd, n := range want {
			So(model.MondayWeekday(wd), ShouldEqual, n)
		}
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a dataset spanning months and weekdays", t, func() {
		ds := &model.Dataset{
			City:    "chicago",
			Columns: []string{"Start Time"},
			Schema:  model.Schema{HasGender: true, HasBirthYear: true},
			Records: []model.TripRecord{
				trip("2017-01-02 08:00:00"), // Jan, Mon
				trip("2017-01-03 09:00:00"), // Jan, Tue
				trip("2017-02-06 10:00:00"), // Feb, Mon
				trip("2017-03-07 11:00:00"), // Mar, Tue
				trip("2017-01-09 12:00:00"), // Jan, Mon
			},
		}

		Convey("When no filter is applied", func() {
			out := model.Filter(ds, model.FilterSelection{City: "chicago", Month: model.All, Day: model.All})

			Convey("Then every record is kept in order", func() {
				So(out.Len(), ShouldEqual, 5)
				So(out.Records, ShouldResemble, ds.Records)
				So(out.Schema, ShouldResemble, ds.Schema)
			})

			Convey("And the result does not share storage with the input", func() {
				out.Records[0].StartStation = "changed"
				So(ds.Records[0].StartStation, ShouldEqual, "A")
			})
		})

		Convey("When filtering by month only", func() {
			out := model.Filter(ds, model.FilterSelection{Month: "1", Day: model.All})

			Convey("Then only January records remain", func() {
				So(out.Len(), ShouldEqual, 3)
				for _, r := range out.Records {
					So(r.Month, ShouldEqual, 1)
				}
			})
		})

		Convey("When filtering by day only", func() {
			out := model.Filter(ds, model.FilterSelection{Month: model.All, Day: "1"})

			Convey("Then only Tuesday records remain", func() {
				So(out.Len(), ShouldEqual, 2)
				for _, r := range out.Records {
					So(r.Weekday, ShouldEqual, 1)
				}
			})
		})

		Convey("When filtering by month and day", func() {
			out := model.Filter(ds, model.FilterSelection{Month: "1", Day: "0"})

			Convey("Then both predicates apply", func() {
				So(out.Len(), ShouldEqual, 2)
				So(out.Records[0].StartTime.Day(), ShouldEqual, 2)
				So(out.Records[1].StartTime.Day(), ShouldEqual, 9)
			})
		})

		Convey("When the filter matches nothing", func() {
			out := model.Filter(ds, model.FilterSelection{Month: "6", Day: model.All})

			Convey("Then the dataset is empty but keeps its schema", func() {
				So(out.Len(), ShouldEqual, 0)
				So(out.City, ShouldEqual, "chicago")
				So(out.Schema.HasGender, ShouldBeTrue)
			})
		})

		Convey("When the month is given with a leading zero", func() {
			out := model.Filter(ds, model.FilterSelection{Month: "01", Day: model.All})

			Convey("Then it is compared as text and matches nothing", func() {
				So(out.Len(), ShouldEqual, 0)
			})
		})

		Convey("When filtering twice with the same selection", func() {
			sel := model.FilterSelection{Month: "1", Day: model.All}
			a := model.Filter(ds, sel)
			b := model.Filter(ds, sel)

			Convey("Then the results are identical", func() {
				So(a.Records, ShouldResemble, b.Records)
			})
		})
	})

	Convey("Given a nil dataset", t, func() {
		var ds *model.Dataset
		So(ds.Len(), ShouldEqual, 0)
	})
}
