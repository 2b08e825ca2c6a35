package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexNa-Holdings/hwparams/params"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type fieldSpec struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Obligatory bool   `yaml:"obligatory"`
}

type fieldsFile struct {
	Fields []fieldSpec `yaml:"fields"`
}

func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FIELDS.yaml REQUEST.json",
		Short: "Validate a JSON request against a list of field descriptors",
		Long: `FIELDS.yaml lists the expected fields:

  fields:
    - name: coin
      type: string
      obligatory: true
    - name: outputs
      type: array
    - name: amount
      type: amount

type is "array", "amount", a primitive tag (string, number, boolean,
object) or empty for presence only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := loadFields(args[0])
			if err != nil {
				return err
			}

			values, err := loadRequest(args[1])
			if err != nil {
				return err
			}

			if err := params.ValidateParams(values, fields); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d fields ok\n", len(fields))
			return nil
		},
	}
}

func loadFields(path string) ([]params.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f fieldsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing fields %s: %w", path, err)
	}

	fields := make([]params.Field, 0, len(f.Fields))
	for i, fs := range f.Fields {
		if fs.Name == "" {
			return nil, fmt.Errorf("field %d in %s has no name", i, path)
		}
		fields = append(fields, params.ParseField(fs.Name, fs.Type, fs.Obligatory))
	}

	log.Debug().Msgf("Loaded %d field descriptors from %s", len(fields), path)
	return fields, nil
}

func loadRequest(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()

	var values map[string]interface{}
	if err := d.Decode(&values); err != nil {
		return nil, fmt.Errorf("error parsing request %s: %w", path, err)
	}
	if values == nil {
		return nil, fmt.Errorf("request %s is not a JSON object", path)
	}
	return values, nil
}
