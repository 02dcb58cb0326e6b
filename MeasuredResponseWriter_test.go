package dispatch

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ljpx/test"
)

type MeasuredResponseWriterFixture struct {
	w *httptest.ResponseRecorder
	x *MeasuredResponseWriter
}

func SetupMeasuredResponseWriterFixture() *MeasuredResponseWriterFixture {
	fixture := &MeasuredResponseWriterFixture{}
	fixture.w = httptest.NewRecorder()
	fixture.x = NewMeasuredResponseWriter(fixture.w)

	return fixture
}

func TestMeasuredResponseWriterPassesHeadersThrough(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()

	// Act.
	fixture.x.Header().Set("X-Test-Header", "test-value")

	// Assert.
	test.That(t, fixture.w.Header().Get("X-Test-Header")).IsEqualTo("test-value")
}

func TestMeasuredResponseWriterRecordsVolume(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()

	// Act.
	fixture.x.Write([]byte("Hello, "))
	fixture.x.Write([]byte("World!"))

	// Assert.
	raw, err := ioutil.ReadAll(fixture.w.Result().Body)
	test.That(t, err).IsNil()
	test.That(t, string(raw)).IsEqualTo("Hello, World!")
	test.That(t, fixture.x.Volume()).IsEqualTo(int64(13))
}

func TestMeasuredResponseWriterOnlyWritesHeadersOnce(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()

	// Act.
	fixture.x.WriteHeader(http.StatusBadRequest)
	fixture.x.WriteHeader(http.StatusForbidden)

	// Assert.
	test.That(t, fixture.w.Result().StatusCode).IsEqualTo(http.StatusBadRequest)
	test.That(t, fixture.x.StatusCode()).IsEqualTo(http.StatusBadRequest)
}

func TestMeasuredResponseWriterDefaultsTo200(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()

	// Act and Assert.
	test.That(t, fixture.x.StatusCode()).IsEqualTo(http.StatusOK)
	test.That(t, fixture.x.HasWrittenHeaders()).IsFalse()
}

func TestMeasuredResponseWriterReportsWrittenHeaders(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()

	// Act.
	fixture.x.WriteHeader(http.StatusCreated)

	// Assert.
	test.That(t, fixture.x.HasWrittenHeaders()).IsTrue()
}

func TestMeasuredResponseWriterMeasuresDuration(t *testing.T) {
	// Arrange.
	fixture := SetupMeasuredResponseWriterFixture()
	time.Sleep(time.Millisecond * 20)

	// Act.
	dur := fixture.x.Duration()

	// Assert.
	test.That(t, float64(dur)).IsGreaterThanOrEqualTo(float64(time.Millisecond * 20))
}
