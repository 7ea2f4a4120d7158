package ubl_test

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ubl "github.com/invoclear/ubl"
	"github.com/invoclear/ubl/bill"
	"github.com/invopop/phive"
	"github.com/stretchr/testify/require"
	"gitlab.com/flimzy/testy"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
)

const (
	xmlPattern  = "*.xml"
	jsonPattern = "*.json"

	staticUUID = "0195ce71-dc9c-72c8-bf2c-9890a4a9f0a2"
)

// updateOut is a flag that can be set to update example files
var updateOut = flag.Bool("update", false, "Update the example files in test/data")

// validate is a flag that enables Phive validation
var validate = flag.Bool("validate", false, "Run Phive validation on generated XML")

// testContexts pairs each clearance context with its fixture directory and
// the validation rule set Phive should apply.
var testContexts = []struct {
	name    string
	context ubl.Context
	dir     string
	vesid   string
}{
	{"Standard", ubl.ContextStandard, "standard", "org.invoclear.clearance:invoice:1.0"},
	{"Simplified", ubl.ContextSimplified, "simplified", "org.invoclear.reporting:invoice:1.0"},
}

func TestConvertExamples(t *testing.T) {
	var pc phive.ValidationServiceClient

	// Only connect to Phive if validation is requested
	if *validate {
		conn, err := grpc.NewClient(
			"127.0.0.1:9091",
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		require.NoError(t, err)
		defer conn.Close() //nolint:errcheck
		pc = phive.NewValidationServiceClient(conn)
	}

	for _, tc := range testContexts {
		t.Run(tc.name, func(t *testing.T) {
			examples, err := filepath.Glob(filepath.Join(getConvertPath(), tc.dir, jsonPattern))
			require.NoError(t, err)

			if len(examples) == 0 {
				t.Skip("No examples found for context")
			}

			for _, example := range examples {
				inName := filepath.Base(example)
				outName := strings.Replace(inName, ".json", ".xml", 1)

				t.Run(inName, func(t *testing.T) {
					inv, err := loadTestInvoice(example)
					require.NoError(t, err)

					doc, err := ubl.Convert(inv, ubl.WithContext(tc.context))
					require.NoError(t, err)

					data, err := ubl.Bytes(doc)
					require.NoError(t, err)

					outPath := filepath.Join(getConvertPath(), tc.dir, "out", outName)
					if *updateOut {
						err = os.WriteFile(outPath, data, 0644)
						require.NoError(t, err)
					}

					// Run Phive validation if requested
					if *validate {
						resp, err := pc.ValidateXml(context.Background(), &phive.ValidateXmlRequest{
							Vesid:      tc.vesid,
							XmlContent: data,
						})
						require.NoError(t, err)
						results, err := json.MarshalIndent(resp.Results, "", "  ")
						require.NoError(t, err)
						require.True(t, resp.Success, "Generated XML should be valid for %s: %s", tc.vesid, string(results))
					}

					output, err := os.ReadFile(outPath)
					require.NoError(t, err)
					if d := testy.DiffText(string(output), string(data)); d != nil {
						t.Errorf("Output does not match the expected XML. Update with --update flag.\n%s", d)
					}
				})
			}
		})
	}
}

func TestParseExamples(t *testing.T) {
	for _, tc := range testContexts {
		t.Run(tc.name, func(t *testing.T) {
			examples, err := filepath.Glob(filepath.Join(getParsePath(), tc.dir, xmlPattern))
			require.NoError(t, err)

			if len(examples) == 0 {
				t.Skip("No examples found for context")
			}

			for _, example := range examples {
				inName := filepath.Base(example)
				outName := strings.Replace(inName, ".xml", ".json", 1)

				t.Run(inName, func(t *testing.T) {
					xmlData, err := os.ReadFile(example)
					require.NoError(t, err)

					doc, err := ubl.Parse(xmlData)
					require.NoError(t, err)
					inv, err := doc.Convert()
					require.NoError(t, err)

					// Pin the UUID so digests stay stable between runs.
					inv.UUID = staticUUID

					data, err := json.MarshalIndent(inv, "", "\t")
					require.NoError(t, err)

					outPath := filepath.Join(getParsePath(), tc.dir, "out", outName)
					if *updateOut {
						err = os.WriteFile(outPath, data, 0644)
						require.NoError(t, err)
					}

					output, err := os.ReadFile(outPath)
					require.NoError(t, err)
					if d := testy.DiffText(string(output), string(data)); d != nil {
						t.Errorf("Invoice does not match the expected JSON. Update with --update flag.\n%s", d)
					}
				})
			}
		})
	}
}

// loadTestInvoice reads a billing invoice fixture from the `test/data` folder.
func loadTestInvoice(path string) (*bill.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	inv := new(bill.Invoice)
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, err
	}

	// Pin the UUID so goldens stay stable between runs.
	inv.UUID = staticUUID

	if err := inv.Calculate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// ValidateXML validates a XML document against a XSD Schema
func ValidateXML(schema *xsd.Schema, data []byte) error {
	xmlDoc, err := libxml2.Parse(data)
	if err != nil {
		return err
	}

	err = schema.Validate(xmlDoc)
	if err != nil {
		return err.(xsd.SchemaValidationError).Errors()[0]
	}

	return nil
}

func getDataPath() string {
	return filepath.Join(getTestPath(), "data")
}

func getConvertPath() string {
	return filepath.Join(getDataPath(), "convert")
}

func getParsePath() string {
	return filepath.Join(getDataPath(), "parse")
}

func getTestPath() string {
	return filepath.Join(getRootFolder(), "test")
}

func getRootFolder() string {
	cwd, _ := os.Getwd()

	for !isRootFolder(cwd) {
		cwd = removeLastEntry(cwd)
	}
	return cwd
}

func isRootFolder(dir string) bool {
	files, _ := os.ReadDir(dir)

	for _, file := range files {
		if file.Name() == "go.mod" {
			return true
		}
	}

	return false
}

func removeLastEntry(dir string) string {
	lastEntry := "/" + filepath.Base(dir)
	i := strings.LastIndex(dir, lastEntry)
	return dir[:i]
}
