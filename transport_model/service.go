package transport_model

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// TemperatureDensity is the input mode tag for (T, rho) queries
	TemperatureDensity = "Td"
	// NoErrors is the error message reported by a property service after a successful call
	NoErrors = "No errors"
)

// TransportProperties is the full output of one property service query
type TransportProperties struct {
	Mu, DMuDT, DMuDRho             float64 // Dynamic viscosity
	Lambda, DLambdaDT, DLambdaDRho float64 // Thermal conductivity
	Sigma                          float64 // Surface tension
}

// PropertyService is a real fluid thermophysical library, queried one state at a time.
// LastError reports the outcome of the most recent query, NoErrors on success.
type PropertyService interface {
	AllTransportProperties(mode string, T, rho float64) (tp TransportProperties)
	LastError() string
}

type ErrorPolicy uint8

const (
	LogAndContinue ErrorPolicy = iota
	CountOnly
	Ignore
)

func (ep ErrorPolicy) String() string {
	names := []string{
		"LogAndContinue",
		"CountOnly",
		"Ignore",
	}
	if int(ep) >= len(names) {
		return "Unknown"
	}
	return names[int(ep)]
}

func NewErrorPolicy(label string) (ep ErrorPolicy, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "", "log", "logandcontinue":
		ep = LogAndContinue
	case "count", "countonly":
		ep = CountOnly
	case "ignore", "none":
		ep = Ignore
	default:
		err = fmt.Errorf("unknown error policy %q, options are LogAndContinue, CountOnly, Ignore", label)
	}
	return
}

// ServiceError records a failed property service query
type ServiceError struct {
	Message string
	T, Rho  float64
	Values  log.Fields
}

func (se *ServiceError) Error() string {
	return fmt.Sprintf("property service error: %s (T = %f, rho = %f)", se.Message, se.T, se.Rho)
}

type ServiceOption func(sc *serviceClient)

func WithErrorPolicy(ep ErrorPolicy) ServiceOption {
	return func(sc *serviceClient) {
		sc.policy = ep
	}
}

func WithLogger(logger log.FieldLogger) ServiceOption {
	return func(sc *serviceClient) {
		sc.logger = logger
	}
}

// serviceClient runs the query / check / report cycle shared by the service backed models.
// Service failures are never returned to the caller, the service output is used as is.
type serviceClient struct {
	svc         PropertyService
	policy      ErrorPolicy
	logger      log.FieldLogger
	failures    int
	lastFailure *ServiceError
}

func newServiceClient(svc PropertyService, opts ...ServiceOption) (sc *serviceClient) {
	sc = &serviceClient{
		svc:    svc,
		policy: LogAndContinue,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return
}

func (sc *serviceClient) query(T, rho float64, values func(tp TransportProperties) log.Fields) (tp TransportProperties) {
	tp = sc.svc.AllTransportProperties(TemperatureDensity, T, rho)
	msg := sc.svc.LastError()
	if msg == NoErrors {
		return
	}
	if sc.policy == Ignore {
		return
	}
	sc.failures++
	sc.lastFailure = &ServiceError{
		Message: msg,
		T:       T,
		Rho:     rho,
		Values:  values(tp),
	}
	if sc.policy == LogAndContinue {
		sc.logger.WithFields(log.Fields{"T": T, "rho": rho}).
			WithFields(sc.lastFailure.Values).
			Warnf("FluidProp error message: %s", msg)
	}
	return
}

func (sc *serviceClient) Policy() ErrorPolicy { return sc.policy }

// Failures is the number of failed queries recorded since construction
func (sc *serviceClient) Failures() int { return sc.failures }

// LastFailure returns the most recent failed query, or nil
func (sc *serviceClient) LastFailure() error {
	if sc.lastFailure == nil {
		return nil
	}
	return sc.lastFailure
}
