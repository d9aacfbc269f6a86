package stats_test

import (
	"testing"

	"github.com/okian/bikeshare/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMode(t *testing.T) {
	Convey("Given integer collections", t, func() {
		Convey("When one value dominates", func() {
			m, ok := stats.Mode([]int{4, 2, 4, 7, 4})
			So(ok, ShouldBeTrue)
			So(m, ShouldEqual, 4)
		})

		Convey("When several values tie", func() {
			Convey("Then the smallest wins regardless of input order", func() {
				m, _ := stats.Mode([]int{9, 9, 3, 3, 5})
				So(m, ShouldEqual, 3)

				m, _ = stats.Mode([]int{3, 3, 9, 9, 5})
				So(m, ShouldEqual, 3)
			})
		})

		Convey("When a later value overtakes an earlier mode", func() {
			m, _ := stats.Mode([]int{1, 1, 8, 8, 8})
			So(m, ShouldEqual, 8)
		})

		Convey("When the collection is empty", func() {
			m, ok := stats.Mode([]int{})
			So(ok, ShouldBeFalse)
			So(m, ShouldEqual, 0)
		})
	})
}

func TestMostCommon(t *testing.T) {
	Convey("Given station names", t, func() {
		Convey("When one name dominates", func() {
			v, n, ok := stats.MostCommon([]string{"Clark", "State", "Clark"})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "Clark")
			So(n, ShouldEqual, 2)
		})

		Convey("When names tie", func() {
			Convey("Then the first seen wins, not the alphabetically smallest", func() {
				v, n, _ := stats.MostCommon([]string{"Wells", "Adams", "Adams", "Wells"})
				So(v, ShouldEqual, "Wells")
				So(n, ShouldEqual, 2)
			})
		})

		Convey("When the input is empty", func() {
			v, n, ok := stats.MostCommon([]string(nil))
			So(ok, ShouldBeFalse)
			So(v, ShouldBeEmpty)
			So(n, ShouldEqual, 0)
		})

		Convey("When run repeatedly over the same tie", func() {
			in := []string{"e", "d", "c", "b", "a", "a", "b", "c", "d", "e"}
			for i := 0; i < 20; i++ {
				v, _, _ := stats.MostCommon(in)
				So(v, ShouldEqual, "e")
			}
		})
	})
}

func TestValueCounts(t *testing.T) {
	Convey("Given user types", t, func() {
		counts := stats.ValueCounts([]string{"Subscriber", "Customer", "Subscriber", "Dependent", "Customer", "Subscriber"})

		Convey("Then counts are ordered by frequency", func() {
			So(counts, ShouldResemble, []stats.Count[string]{
				{Value: "Subscriber", N: 3},
				{Value: "Customer", N: 2},
				{Value: "Dependent", N: 1},
			})
		})
	})

	Convey("Given tied values", t, func() {
		counts := stats.ValueCounts([]string{"Male", "Female"})

		Convey("Then ties are ordered by value", func() {
			So(counts[0].Value, ShouldEqual, "Female")
			So(counts[1].Value, ShouldEqual, "Male")
		})
	})

	Convey("Given no values", t, func() {
		So(stats.ValueCounts([]string{}), ShouldBeEmpty)
	})
}
