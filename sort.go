package postfix

import (
	"math"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// sortEntry remembers where an expression was before sorting so that ties
// keep their input order.
type sortEntry struct {
	e *Expr
	i int
}

// Sort orders expressions by ascending value, in place. Expressions with equal
// values keep their relative order. NaN values sort after all numbers.
func Sort(exprs []*Expr) {
	list := arraylist.New()
	for i, e := range exprs {
		list.Add(sortEntry{e, i})
	}
	list.Sort(byValue)
	for i, v := range list.Values() {
		exprs[i] = v.(sortEntry).e
	}
	tracer().Debugf("sorted %d expressions", len(exprs))
}

var _ utils.Comparator = byValue

func byValue(a, b interface{}) int {
	x, y := a.(sortEntry), b.(sortEntry)
	if c := compareValues(x.e.val, y.e.val); c != 0 {
		return c
	}
	return utils.IntComparator(x.i, y.i)
}

// compareValues is a total order on float64 in which NaN is greater than
// everything else and equal to itself.
func compareValues(a, b float64) int {
	switch an, bn := math.IsNaN(a), math.IsNaN(b); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
