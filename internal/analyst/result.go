// Package analyst turns transcript text into a structured earnings-call
// insight record by prompting a completion service and recovering the JSON
// object from its reply.
package analyst

// Sentinel is the fixed placeholder the model is instructed to emit for
// information absent from the transcript.
const Sentinel = "Not mentioned in transcript"

// Result is the fixed-shape analysis record. Every field is required; absent
// information is carried as the Sentinel string, never by omission.
type Result struct {
	ManagementTone      string   `json:"management_tone"`
	ConfidenceLevel     string   `json:"confidence_level"`
	KeyPositives        []string `json:"key_positives"`
	KeyConcerns         []string `json:"key_concerns"`
	ForwardGuidance     string   `json:"forward_guidance"`
	CapacityUtilization string   `json:"capacity_utilization"`
	GrowthInitiatives   []string `json:"growth_initiatives"`
}
