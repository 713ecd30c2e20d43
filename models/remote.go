package models

// Parameter names understood by the remote invoker.
const (
	ParamAccessKey = "accessKey"
	ParamSecretKey = "secretKey"
	ParamRegion    = "region"
	ParamOperation = "operation"
)

// RemoteParams is the flat parameter map used to configure a remote call.
type RemoteParams map[string]string

// RemoteCall is one invocation of a remote operation.
type RemoteCall struct {
	Operation     string       `json:"operation"`
	Params        RemoteParams `json:"params,omitempty"`
	CorrelationID string       `json:"correlation_id,omitempty"`
	Payload       []byte       `json:"payload,omitempty"`
}

// RemoteResult is the outcome of a successful remote call.
type RemoteResult struct {
	StatusCode int    `json:"status_code"`
	Payload    []byte `json:"payload,omitempty"`
}

// VerificationScope selects how deep a parameter verification goes.
type VerificationScope string

const (
	// ScopeParameters checks parameters locally without network access.
	ScopeParameters VerificationScope = "PARAMETERS"
	// ScopeConnectivity checks parameters and then probes the remote side.
	ScopeConnectivity VerificationScope = "CONNECTIVITY"
)

// VerificationStatus is the verdict of a verification.
type VerificationStatus string

const (
	VerificationOK          VerificationStatus = "OK"
	VerificationError       VerificationStatus = "ERROR"
	VerificationUnsupported VerificationStatus = "UNSUPPORTED"
)

// VerificationResult collects the verdict and every problem found.
type VerificationResult struct {
	Scope  VerificationScope  `json:"scope"`
	Status VerificationStatus `json:"status"`
	Errors []string           `json:"errors,omitempty"`
}

// VerifyRequest is the control API body asking for a verification.
type VerifyRequest struct {
	Scope VerificationScope `json:"scope"`
}
