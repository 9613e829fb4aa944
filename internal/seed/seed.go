// Package seed はサンプル名簿を提供します。
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/ogurasousui/workforce/internal/core/employee"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

const dateLayout = "2006-01-02"

type rosterFile struct {
	Employees []rosterEntry `yaml:"employees"`
}

type rosterEntry struct {
	Name       string   `yaml:"name"`
	Position   string   `yaml:"position"`
	Department string   `yaml:"department"`
	Email      string   `yaml:"email"`
	Phone      string   `yaml:"phone"`
	StartDate  string   `yaml:"start_date"`
	Skills     []string `yaml:"skills"`
}

// Roster は埋め込みのサンプル名簿を社員作成入力として返します。
// start_date を省略した社員は登録時の日付になります。
func Roster() ([]employee.CreateEmployeeInput, error) {
	return Parse(rosterYAML)
}

// Parse は YAML 形式の名簿を読み込みます。未知のキーはエラーになります。
func Parse(data []byte) ([]employee.CreateEmployeeInput, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file rosterFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("seed: decode roster: %w", err)
	}

	inputs := make([]employee.CreateEmployeeInput, 0, len(file.Employees))
	for i, entry := range file.Employees {
		in := employee.CreateEmployeeInput{
			Name:       entry.Name,
			Position:   entry.Position,
			Department: entry.Department,
			Email:      entry.Email,
			Phone:      entry.Phone,
			Skills:     entry.Skills,
		}
		if entry.StartDate != "" {
			d, err := time.Parse(dateLayout, entry.StartDate)
			if err != nil {
				return nil, fmt.Errorf("seed: employee %d start_date: %w", i, err)
			}
			in.StartDate = &d
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
