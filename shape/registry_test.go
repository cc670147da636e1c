package shape_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/primitive"
	"ags/shape"
	"ags/tuple"
)

type audit struct {
	CreatedBy string
	note      string
}

type invoice struct {
	audit
	InvoiceID int       `shape:"id"`
	DueDate   time.Time `shape:",date"`
	Internal  string    `shape:"-"`
	LineItems []float64
	Approver  *string
	hidden    bool
}

func TestDescribeRecord(t *testing.T) {
	reg := shape.NewRegistry(shape.WithFieldNamer(shape.SnakeCase))

	d := shape.For[invoice](reg)
	rec, ok := d.(*shape.Record)
	require.True(t, ok, "got %T", d)

	names := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"created_by", "id", "due_date", "line_items", "approver"}, names)

	createdBy, ok := rec.Lookup("created_by")
	require.True(t, ok)
	assert.Equal(t, []int{0, 0}, createdBy.Index)

	due, _ := rec.Lookup("due_date")
	assert.Equal(t, shape.DateDate, due.Type.(*shape.DateTime).Kind)

	items, _ := rec.Lookup("line_items")
	assert.IsType(t, &shape.List{}, items.Type)

	approver, _ := rec.Lookup("approver")
	union, ok := approver.Type.(*shape.Union)
	require.True(t, ok)
	assert.Equal(t, "Optional[string]", union.String())
	assert.Equal(t, reflect.TypeFor[*string](), union.GoType())
}

func TestDescribeFieldNamers(t *testing.T) {
	type sample struct{ MaxRetryCount int }

	for namer, want := range map[string]string{
		"identity": "MaxRetryCount",
		"snake":    "max_retry_count",
		"camel":    "maxRetryCount",
		"kebab":    "max-retry-count",
	} {
		t.Run(namer, func(t *testing.T) {
			var opts []shape.Option
			switch namer {
			case "snake":
				opts = append(opts, shape.WithFieldNamer(shape.SnakeCase))
			case "camel":
				opts = append(opts, shape.WithFieldNamer(shape.LowerCamelCase))
			case "kebab":
				opts = append(opts, shape.WithFieldNamer(shape.KebabCase))
			}

			rec := shape.For[sample](shape.NewRegistry(opts...)).(*shape.Record)
			require.Len(t, rec.Fields, 1)
			assert.Equal(t, want, rec.Fields[0].Name)
		})
	}
}

type chain struct {
	Value int
	Next  *chain
}

func TestDescribeCyclic(t *testing.T) {
	rec := shape.Of[chain]().(*shape.Record)

	next, ok := rec.Lookup("Next")
	require.True(t, ok)

	union := next.Type.(*shape.Union)
	unknown, ok := union.Alternatives[0].Type.(*shape.Unknown)
	require.True(t, ok, "got %T", union.Alternatives[0].Type)
	assert.Equal(t, "cyclic type", unknown.Reason)
}

type (
	tree  []tree
	index map[string]index
	link  *link
)

func TestDescribeCyclicContainers(t *testing.T) {
	list, ok := shape.Of[tree]().(*shape.List)
	require.True(t, ok)
	elem, ok := list.Elem.(*shape.Unknown)
	require.True(t, ok, "got %T", list.Elem)
	assert.Equal(t, "cyclic type", elem.Reason)
	assert.Equal(t, "shape_test.tree (cyclic type)", elem.String())

	dict, ok := shape.Of[index]().(*shape.Map)
	require.True(t, ok)
	assert.IsType(t, &shape.Unknown{}, dict.Value)

	union, ok := shape.Of[link]().(*shape.Union)
	require.True(t, ok)
	assert.IsType(t, &shape.Unknown{}, union.Alternatives[0].Type)

	// Repeated element types are not cycles.
	assert.IsType(t, &shape.List{}, shape.Of[[][]int]().(*shape.List).Elem)
}

func TestDescribeKinds(t *testing.T) {
	type celsius float64

	tests := []struct {
		name string
		typ  reflect.Type
		want any
	}{
		{"int", reflect.TypeFor[int](), &shape.Primitive{}},
		{"named float", reflect.TypeFor[celsius](), &shape.Primitive{}},
		{"complex", reflect.TypeFor[complex128](), &shape.Complex{}},
		{"bytes", reflect.TypeFor[[]byte](), &shape.Bytes{}},
		{"time", reflect.TypeFor[time.Time](), &shape.DateTime{}},
		{"duration", reflect.TypeFor[time.Duration](), &shape.DateTime{}},
		{"pair", reflect.TypeFor[tuple.Pair[int, string]](), &shape.Tuple{}},
		{"triple", reflect.TypeFor[tuple.Triple[int, int, int]](), &shape.Tuple{}},
		{"uniform", reflect.TypeFor[tuple.Uniform[int]](), &shape.UniformTuple{}},
		{"array", reflect.TypeFor[[3]int](), &shape.Tuple{}},
		{"map", reflect.TypeFor[map[string]bool](), &shape.Map{}},
		{"int keyed map", reflect.TypeFor[map[int]bool](), &shape.Unknown{}},
		{"interface", reflect.TypeFor[fmt.Stringer](), &shape.Unknown{}},
		{"chan", reflect.TypeFor[chan int](), &shape.Unknown{}},
	}

	reg := shape.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := reg.Describe(tt.typ)
			assert.IsType(t, tt.want, d)
			assert.Equal(t, tt.typ, d.GoType())
		})
	}

	assert.Equal(t, primitive.KindFloat64, reg.Describe(reflect.TypeFor[celsius]()).(*shape.Primitive).Kind)
	assert.Len(t, reg.Describe(reflect.TypeFor[[3]int]()).(*shape.Tuple).Elems, 3)
	assert.Equal(t, shape.DateDuration, reg.Describe(reflect.TypeFor[time.Duration]()).(*shape.DateTime).Kind)
}

type shapeKind interface{ area() float64 }

type square struct{ Side float64 }
type circle struct{ Radius float64 }

func (s square) area() float64 { return s.Side * s.Side }
func (c circle) area() float64 { return 3 * c.Radius * c.Radius }

func TestRegisterUnion(t *testing.T) {
	reg := shape.NewRegistry()
	iface := reflect.TypeFor[shapeKind]()

	require.NoError(t, reg.RegisterUnion(iface, reflect.TypeFor[square](), reflect.TypeFor[circle]()))

	union, ok := reg.Describe(iface).(*shape.Union)
	require.True(t, ok)
	require.Len(t, union.Alternatives, 2)
	assert.Equal(t, "square", union.Alternatives[0].TagName())
	assert.Equal(t, "circle", union.Alternatives[1].TagName())

	err := reg.RegisterUnion(iface, reflect.TypeFor[int]())
	assert.ErrorIs(t, err, shape.ErrNotAnAlternative)
}

func TestRegisterOverridesDerived(t *testing.T) {
	type level int

	reg := shape.NewRegistry()
	assert.IsType(t, &shape.Primitive{}, shape.For[level](reg))

	require.NoError(t, reg.Register(shape.LiteralOf(level(1), level(2))))
	assert.IsType(t, &shape.Literal{}, shape.For[level](reg))

	assert.ErrorIs(t, reg.Register(shape.SignatureOf()), shape.ErrNotRegistrable)
	assert.ErrorIs(t, reg.Register(&shape.Record{}), shape.ErrNoGoType)
}

type version struct{ major, minor int }

func (v version) Reduce() (reflect.Type, []any) {
	return reflect.TypeFor[version](), []any{fmt.Sprintf("%d.%d", v.major, v.minor)}
}

func (version) Constructor() any { return parseVersion }

func parseVersion(s string) (version, error) {
	var v version
	_, err := fmt.Sscanf(s, "%d.%d", &v.major, &v.minor)
	return v, err
}

type badVersion struct{}

func (badVersion) Reduce() (reflect.Type, []any) { return nil, nil }
func (badVersion) Constructor() any              { return strconv.Itoa }

func TestDescribeOpaque(t *testing.T) {
	reg := shape.NewRegistry()

	opaque, ok := shape.For[version](reg).(*shape.Opaque)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[string](), opaque.Arg.GoType())
	assert.Equal(t, "shape_test.parseVersion", opaque.Construct.String())

	reducedType, args, ok := opaque.Reduce(version{1, 2})
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[version](), reducedType)
	assert.Equal(t, []any{"1.2"}, args)

	unknown, ok := shape.For[badVersion](reg).(*shape.Unknown)
	require.True(t, ok)
	assert.Contains(t, unknown.Reason, "returns string")
}
