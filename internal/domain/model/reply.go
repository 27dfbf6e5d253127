package model

// AckKind enumerates the acknowledgement replies of setStatus.
type AckKind string

const (
	AckActivation AckKind = "ACCESS_ACTIVATION"
	AckCancel     AckKind = "ACCESS_CANCEL"
	AckReady      AckKind = "ACCESS_READY"
	AckRetryGet   AckKind = "ACCESS_RETRY_GET"
)

// ActivationRequest names a setStatus transition requested from the provider.
type ActivationRequest string

const (
	RequestFinish ActivationRequest = "finish"
	RequestCancel ActivationRequest = "cancel"
	RequestRetry  ActivationRequest = "retry"
)

// Reply is a parsed provider response. Concrete values are NumberIssued,
// CodeReceived, Ack, BalanceReport, Opaque and TransportFailure.
type Reply interface {
	// Text returns the raw provider text, empty for transport failures.
	Text() string
	reply()
}

// NumberIssued is ACCESS_NUMBER:<id>:<number>.
type NumberIssued struct {
	ID     string
	Number string
	Raw    string
}

// CodeReceived is STATUS_OK:<code>.
type CodeReceived struct {
	Code string
	Raw  string
}

// Ack is one of the fixed acknowledgement replies.
type Ack struct {
	Kind AckKind
	Raw  string
}

// BalanceReport is ACCESS_BALANCE:<value>.
type BalanceReport struct {
	Value string
	Raw   string
}

// Opaque is any reply the parser does not recognise.
type Opaque struct {
	Raw string
}

// TransportFailure means no usable reply arrived.
type TransportFailure struct {
	Err error
}

func (r NumberIssued) Text() string     { return r.Raw }
func (r CodeReceived) Text() string     { return r.Raw }
func (r Ack) Text() string              { return r.Raw }
func (r BalanceReport) Text() string    { return r.Raw }
func (r Opaque) Text() string           { return r.Raw }
func (r TransportFailure) Text() string { return "" }

func (NumberIssued) reply()     {}
func (CodeReceived) reply()     {}
func (Ack) reply()              {}
func (BalanceReport) reply()    {}
func (Opaque) reply()           {}
func (TransportFailure) reply() {}
