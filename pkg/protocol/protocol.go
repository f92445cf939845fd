/*
Package protocol implements the wire contract between a caller and the
engine.

Requests and responses are self-describing JSON envelopes discriminated by a
"type" field. Decoding failures never reach the dispatch engine; they are
reported immediately as a FailedToParseIPCJson error. The success path and
the error path are mutually exclusive response shapes: an execution response
carries outputs and evidence for every submitted call, or the response is a
single typed error.
*/
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gantrykit/gantry/pkg/domain"
)

// RequestType discriminates incoming requests.
type RequestType string

const (
	// RequestResetState discards the engine session.
	RequestResetState RequestType = "reset_state"
	// RequestInstructions asks for the instruction catalog.
	RequestInstructions RequestType = "instructions"
	// RequestRunInstructions executes a batch of instruction calls.
	RequestRunInstructions RequestType = "run_instructions"
	// RequestShutDown asks the host process to exit.
	RequestShutDown RequestType = "shut_down"
)

// Request is one decoded caller request.
type Request struct {
	Type RequestType `json:"type"`
	// Instructions is the ordered batch for run_instructions requests.
	Instructions []domain.InstructionCall `json:"instructions,omitempty"`
}

// DecodeRequest parses a request payload. Any malformed payload, including
// an unknown type or stray fields, is a FailedToParseIPCJson error.
func DecodeRequest(data []byte) (Request, *domain.Error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return Request{}, domain.NewError(domain.ErrFailedToParseIPCJson,
			"the IPC message was invalid: %v", err)
	}

	switch req.Type {
	case RequestResetState, RequestInstructions, RequestShutDown:
		if req.Instructions != nil {
			return Request{}, domain.NewError(domain.ErrFailedToParseIPCJson,
				"request %q carries no instruction payload", req.Type)
		}
	case RequestRunInstructions:
		// An empty batch is valid and yields an empty execution output.
	default:
		return Request{}, domain.NewError(domain.ErrFailedToParseIPCJson,
			"unknown request type %q", req.Type)
	}

	return req, nil
}

// ResponseType discriminates outgoing responses.
type ResponseType string

const (
	// ResponseStateReset acknowledges a reset_state request.
	ResponseStateReset ResponseType = "state_reset"
	// ResponseInstructions carries the instruction catalog.
	ResponseInstructions ResponseType = "instructions"
	// ResponseExecutionOutput carries per-call outputs and evidence.
	ResponseExecutionOutput ResponseType = "execution_output"
	// ResponseError carries a single typed error.
	ResponseError ResponseType = "error"
)

// Response is one encoded reply. Use the constructors; they enforce the
// closed set of response shapes.
type Response struct {
	Type ResponseType

	// instructions
	FriendlyName string
	Instructions []domain.Instruction

	// execution_output; index-aligned with the submitted call sequence.
	Output   []domain.Output
	Evidence [][]domain.Evidence

	// error
	Kind   domain.ErrorKind
	Reason string
}

// MarshalJSON emits exactly the fields that belong to the response type, so
// an execution_output always carries its output and evidence arrays and an
// error response carries nothing but kind and reason.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case ResponseStateReset:
		return json.Marshal(struct {
			Type ResponseType `json:"type"`
		}{r.Type})
	case ResponseInstructions:
		return json.Marshal(struct {
			Type         ResponseType         `json:"type"`
			FriendlyName string               `json:"friendly_name"`
			Instructions []domain.Instruction `json:"instructions"`
		}{r.Type, r.FriendlyName, r.Instructions})
	case ResponseExecutionOutput:
		return json.Marshal(struct {
			Type     ResponseType        `json:"type"`
			Output   []domain.Output     `json:"output"`
			Evidence [][]domain.Evidence `json:"evidence"`
		}{r.Type, r.Output, r.Evidence})
	case ResponseError:
		return json.Marshal(struct {
			Type   ResponseType     `json:"type"`
			Kind   domain.ErrorKind `json:"kind"`
			Reason string           `json:"reason"`
		}{r.Type, r.Kind, r.Reason})
	default:
		return nil, fmt.Errorf("unknown response type %q", r.Type)
	}
}

// StateReset builds the reset acknowledgement.
func StateReset() Response {
	return Response{Type: ResponseStateReset}
}

// Catalog builds the instruction catalog response.
func Catalog(friendlyName string, instructions []domain.Instruction) Response {
	if instructions == nil {
		instructions = []domain.Instruction{}
	}
	return Response{
		Type:         ResponseInstructions,
		FriendlyName: friendlyName,
		Instructions: instructions,
	}
}

// ExecutionOutput builds the success response for an executed batch.
func ExecutionOutput(output []domain.Output, evidence [][]domain.Evidence) Response {
	if output == nil {
		output = []domain.Output{}
	}
	if evidence == nil {
		evidence = [][]domain.Evidence{}
	}
	for i, ev := range evidence {
		if ev == nil {
			evidence[i] = []domain.Evidence{}
		}
	}
	return Response{
		Type:     ResponseExecutionOutput,
		Output:   output,
		Evidence: evidence,
	}
}

// Error builds the failure response.
func Error(err *domain.Error) Response {
	return Response{
		Type:   ResponseError,
		Kind:   err.Kind,
		Reason: err.Reason,
	}
}

// Encode serializes a response to one JSON document without a trailing
// newline.
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}
