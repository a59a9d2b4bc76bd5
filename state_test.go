package fock

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fixture() *State {
	return NewState(
		Entry{NewDeterminant(7), 0.33},
		Entry{NewDeterminant(2), 0.33},
		Entry{NewDeterminant(14), 0.33},
	)
}

func TestNewState(t *testing.T) {
	Convey("Given a list of entries", t, func() {
		s := fixture()

		Convey("Then lookups should expose exactly those entries", func() {
			So(s.Len(), ShouldEqual, 3)
			for _, idx := range []uint64{7, 2, 14} {
				a, ok := s.Amplitude(NewDeterminant(idx))
				So(ok, ShouldBeTrue)
				So(a, ShouldEqual, 0.33)
			}

			_, ok := s.Amplitude(NewDeterminant(1))
			So(ok, ShouldBeFalse)
		})

		Convey("Then entries should come back ordered by index", func() {
			So(s.Entries(), ShouldResemble, []Entry{
				{NewDeterminant(2), 0.33},
				{NewDeterminant(7), 0.33},
				{NewDeterminant(14), 0.33},
			})
			So(s.String(), ShouldEqual, "+0.33|00000010> +0.33|00000111> +0.33|00001110>")
		})

		Convey("Then iteration should stop when asked", func() {
			seen := 0
			for range s.All() {
				seen++
				break
			}
			So(seen, ShouldEqual, 1)
		})
	})

	Convey("Given entries at or below the tolerance", t, func() {
		s := NewState(
			Entry{NewDeterminant(1), 0},
			Entry{NewDeterminant(2), Tolerance},
			Entry{NewDeterminant(3), -Tolerance / 2},
			Entry{NewDeterminant(4), 1e-3},
		)

		Convey("Then only the significant entry should be stored", func() {
			So(s.Len(), ShouldEqual, 1)
			a, ok := s.Amplitude(NewDeterminant(4))
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, 1e-3)
		})
	})

	Convey("Given duplicate determinants", t, func() {
		s := NewState(
			Entry{NewDeterminant(5), 0.1},
			Entry{NewDeterminant(5), 0.7},
		)

		Convey("Then the later entry should win", func() {
			So(s.Len(), ShouldEqual, 1)
			a, _ := s.Amplitude(NewDeterminant(5))
			So(a, ShouldEqual, 0.7)
		})
	})

	Convey("Given an empty state", t, func() {
		s := NewState()
		So(s.Len(), ShouldEqual, 0)
		So(s.String(), ShouldEqual, "0")
		So(s.Norm(), ShouldEqual, 0.0)
	})
}

func TestStateOverlap(t *testing.T) {
	Convey("Given two states", t, func() {
		a := NewState(Entry{NewDeterminant(1), 3}, Entry{NewDeterminant(2), 4})
		b := NewState(Entry{NewDeterminant(2), 0.5}, Entry{NewDeterminant(8), 10})

		Convey("Then the norm should be Euclidean", func() {
			So(a.Norm(), ShouldEqual, 5.0)
		})

		Convey("Then the overlap should only pair matching determinants", func() {
			So(a.Inner(b), ShouldEqual, 2.0)
			So(b.Inner(a), ShouldEqual, 2.0)
		})
	})
}
