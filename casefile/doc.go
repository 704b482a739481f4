// Package casefile loads tables of input/expected-output cases from YAML or
// TOML files.
//
// The counting packages in this module keep their known answers as fixture
// files under testdata/ rather than as Go literals. A suite names the
// function it exercises and lists its cases:
//
//	function: MaxExtractions
//	cases:
//	  - input: BAONXXOLL
//	    want: 1
//	  - name: lowercase rejected
//	    input: balloon
//	    want_err: true
//
// The same suite in TOML:
//
//	function = "MinPartitions"
//
//	[[cases]]
//	input = "cycle"
//	want = 2
//
// Load picks the decoder from the file extension. Unknown keys are rejected
// so a typo in a fixture does not silently drop an expectation.
//
// # Schema
//
// Schema returns the JSON Schema of the suite format, for editors and
// external validators:
//
//	data, err := casefile.SchemaJSON()
package casefile
