package dispatch

import (
	"testing"

	"github.com/ljpx/test"
)

func TestArgumentsTypedAccessors(t *testing.T) {
	// Arrange.
	args := Arguments{
		"id":      42,
		"ratio":   0.5,
		"name":    "sprocket",
		"verbose": true,
		"widget":  nil,
	}

	// Act and Assert.
	test.That(t, args.Int("id")).IsEqualTo(42)
	test.That(t, args.Float("ratio")).IsEqualTo(0.5)
	test.That(t, args.String("name")).IsEqualTo("sprocket")
	test.That(t, args.Bool("verbose")).IsTrue()
	test.That(t, args.IsNull("widget")).IsTrue()
	test.That(t, args.Has("widget")).IsTrue()
	test.That(t, args.Has("missing")).IsFalse()
	test.That(t, args.IsNull("missing")).IsFalse()
}

func TestArgumentsMistypedAccessorsYieldZeroValues(t *testing.T) {
	// Arrange.
	args := Arguments{"id": "not-an-int"}

	// Act and Assert.
	test.That(t, args.Int("id")).IsEqualTo(0)
	test.That(t, args.Bool("id")).IsFalse()
	test.That(t, args.String("id")).IsEqualTo("not-an-int")
}
