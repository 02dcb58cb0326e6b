package dispatch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ljpx/di"
	"github.com/ljpx/logging"
	"github.com/ljpx/problem"
	"github.com/ljpx/test"
)

type ExceptionHandlerFixture struct {
	w      *httptest.ResponseRecorder
	ctx    *Context
	logger *spyLogger
	x      *ExceptionHandler
}

func SetupExceptionHandlerFixture() *ExceptionHandlerFixture {
	fixture := &ExceptionHandlerFixture{}
	fixture.w = httptest.NewRecorder()
	fixture.logger = &spyLogger{}

	config := &Config{
		DebuggingEnabled:         true,
		ProblemDetailsTypePrefix: "https://testi.ng",
		BodyContentLengthLimit:   1 << 20,
	}

	r := httptest.NewRequest(http.MethodGet, "/widgets", nil)
	fixture.ctx = NewContext(NewMeasuredResponseWriter(fixture.w), r, di.NewContainer(), config)
	fixture.ctx.negotiate(DefaultNegotiator())

	fixture.x = NewExceptionHandler(fixture.logger, NewProblemResponseFactory(config))

	return fixture
}

func TestExceptionHandlerPassThroughOnSuccess(t *testing.T) {
	// Arrange.
	fixture := SetupExceptionHandlerFixture()

	// Act.
	err := fixture.x.Handle(fixture.ctx, func() error {
		fixture.ctx.RespondWithJSON(http.StatusOK, &greetingModel{Message: "ok"})
		return nil
	})

	// Assert.
	test.That(t, err).IsNil()
	test.That(t, fixture.w.Result().StatusCode).IsEqualTo(http.StatusOK)
	test.That(t, len(fixture.logger.lines)).IsEqualTo(0)
}

func TestExceptionHandlerTypedErrorKeepsItsStatus(t *testing.T) {
	// Arrange.
	fixture := SetupExceptionHandlerFixture()

	// Act.
	err := fixture.x.Handle(fixture.ctx, func() error {
		return NewError(http.StatusTeapot, "teapot/short-and-stout", "I'm a teapot.")
	})

	// Assert.
	test.That(t, err).IsNil()
	test.That(t, fixture.w.Result().StatusCode).IsEqualTo(http.StatusTeapot)
	test.That(t, len(fixture.logger.lines)).IsEqualTo(1)
}

func TestExceptionHandlerGenericErrorBecomes500(t *testing.T) {
	// Arrange.
	fixture := SetupExceptionHandlerFixture()

	// Act.
	err := fixture.x.Handle(fixture.ctx, func() error {
		return fmt.Errorf("ahhh")
	})

	// Assert.
	test.That(t, err).IsNil()

	res := fixture.w.Result()
	test.That(t, res.StatusCode).IsEqualTo(http.StatusInternalServerError)

	problemDetails := &problem.Details{}
	unmarshalErr := UnmarshalFromResponse(res, problemDetails)
	test.That(t, unmarshalErr).IsNil()

	test.That(t, problemDetails.Type).IsEqualTo("https://testi.ng/http/internal-server-error")
	test.That(t, problemDetails.Detail).IsEqualTo("An internal server error prevented the request from completing.")
	test.That(t, problemDetails.Error).IsEqualTo("ahhh")
}

func TestExceptionHandlerNeverLetsAPanicEscape(t *testing.T) {
	// Arrange.
	fixture := SetupExceptionHandlerFixture()

	// Act.
	err := fixture.x.Handle(fixture.ctx, func() error {
		panic("something to panic about")
	})

	// Assert.
	test.That(t, err).IsNil()
	test.That(t, fixture.w.Result().StatusCode).IsEqualTo(http.StatusInternalServerError)
	test.That(t, len(fixture.logger.lines)).IsEqualTo(1)
}

func TestExceptionHandlerDoesNotRespondTwice(t *testing.T) {
	// Arrange.
	fixture := SetupExceptionHandlerFixture()

	// Act.
	err := fixture.x.Handle(fixture.ctx, func() error {
		fixture.ctx.RespondWithJSON(http.StatusCreated, &greetingModel{Message: "made"})
		return fmt.Errorf("ahhh, but too late")
	})

	// Assert.
	test.That(t, err).IsNil()
	test.That(t, fixture.w.Result().StatusCode).IsEqualTo(http.StatusCreated)
	test.That(t, len(fixture.logger.lines)).IsEqualTo(1)
}

// -----------------------------------------------------------------------------

type spyLogger struct {
	lines []string
}

var _ logging.Logger = &spyLogger{}

func (l *spyLogger) Printf(format string, a ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, a...))
}
