package expr

import (
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

func TestEvaluator(t *testing.T) {
	Convey("Given an evaluator with an empty symbol table", t, func() {
		ev := NewEvaluator(nil, nil)

		Convey("literal arithmetic evaluates without touching the table", func() {
			res, err := ev.Eval("2 5 *")
			So(err, ShouldBeNil)
			So(res.Value, ShouldEqual, 10)
			So(res.String(), ShouldEqual, "2 5 * = 10")

			res, err = ev.Eval("7 2 - 3 %")
			So(err, ShouldBeNil)
			So(res.Value, ShouldEqual, 2)

			res, err = ev.Eval("9 2 / ~ ++")
			So(err, ShouldBeNil)
			So(res.Value, ShouldEqual, -3)
			So(ev.Symbols().Len(), ShouldEqual, 0)
		})

		Convey("assignment stores the value and returns it", func() {
			res, err := ev.Eval("x 5 = ++ 3 2 * +")
			So(err, ShouldBeNil)
			So(res.Value, ShouldEqual, 12)
			So(res.Expr, ShouldEqual, "x 5 = ++ 3 2 * +")

			x, err := ev.Symbols().Find("x")
			So(err, ShouldBeNil)
			So(x, ShouldEqual, 5)

			Convey("and later expressions can read it", func() {
				res, err := ev.Eval("x x *")
				So(err, ShouldBeNil)
				So(res.Value, ShouldEqual, 25)
			})

			Convey("reassignment overwrites without adding a symbol", func() {
				_, err := ev.Eval("x 1 =")
				So(err, ShouldBeNil)
				So(ev.Symbols().Len(), ShouldEqual, 1)
				x, _ := ev.Symbols().Find("x")
				So(x, ShouldEqual, 1)
			})
		})

		Convey("a variable assigned zero is defined", func() {
			_, err := ev.Eval("z 0 =")
			So(err, ShouldBeNil)
			res, err := ev.Eval("z 4 +")
			So(err, ShouldBeNil)
			So(res.Value, ShouldEqual, 4)
		})

		Convey("compound assignment reads, applies and stores", func() {
			_, err := ev.Eval("n 10 =")
			So(err, ShouldBeNil)

			for _, step := range []struct {
				expr string
				want int
			}{
				{"n 5 +=", 15},
				{"n 3 -=", 12},
				{"n 2 *=", 24},
				{"n 5 /=", 4},
				{"n 3 %=", 1},
			} {
				res, err := ev.Eval(step.expr)
				So(err, ShouldBeNil)
				So(res.Value, ShouldEqual, step.want)
				n, _ := ev.Symbols().Find("n")
				So(n, ShouldEqual, step.want)
			}
		})

		Convey("an undefined variable is reported, not read as zero", func() {
			_, err := ev.Eval("y 1 +")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUndefinedVariable), ShouldBeTrue)
			So(errors.Is(err, linear.ErrKeyNotFound), ShouldBeTrue)

			_, err = ev.Eval("y 1 +=")
			So(errors.Is(err, ErrUndefinedVariable), ShouldBeTrue)
			So(ev.Symbols().Contains("y"), ShouldBeFalse)
		})

		Convey("division and modulo by zero fail", func() {
			_, err := ev.Eval("1 0 /")
			So(errors.Is(err, ErrDivideByZero), ShouldBeTrue)
			_, err = ev.Eval("1 0 %")
			So(errors.Is(err, ErrDivideByZero), ShouldBeTrue)

			_, err = ev.Eval("d 4 =")
			So(err, ShouldBeNil)
			_, err = ev.Eval("d 0 /=")
			So(errors.Is(err, ErrDivideByZero), ShouldBeTrue)
			d, _ := ev.Symbols().Find("d")
			So(d, ShouldEqual, 4)
		})

		Convey("parse errors are returned unchanged", func() {
			_, err := ev.Eval("1 +")
			So(errors.Is(err, ErrStackUnderflow), ShouldBeTrue)
		})
	})

	Convey("Hand built trees with a non variable assignment target fail", t, func() {
		ev := NewEvaluator(linear.New[string, int](4), nil)
		_, err := ev.EvalNode(Binary{Op: OpAssign, Left: Number{1}, Right: Number{2}})
		So(errors.Is(err, ErrInvalidAssignment), ShouldBeTrue)
	})

	Convey("Many variables force the symbol table to grow", t, func() {
		ev := NewEvaluator(linear.New[string, int](2), nil)
		names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
		for i, name := range names {
			_, err := ev.EvalNode(Binary{Op: OpAssign, Left: Variable{name}, Right: Number{i}})
			So(err, ShouldBeNil)
		}
		So(ev.Symbols().Cap(), ShouldBeGreaterThanOrEqualTo, 32)
		res, err := ev.Eval("a b + c + d + e + f + g + h + i + j +")
		So(err, ShouldBeNil)
		So(res.Value, ShouldEqual, 45)
	})
}
