package opscript

import (
	"os"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v2"
)

// Script сценарий операций над списком строк.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step отдельный шаг сценария.
//
// Для операций возвращающих элемент Expect задаёт ожидаемое значение,
// а Absent требует отсутствия элемента. Items задаёт ожидаемое содержимое
// списка для операции list, Count ожидаемую длину для операции len.
type Step struct {
	Op     Op       `yaml:"op"`
	Value  string   `yaml:"value,omitempty"`
	Expect *string  `yaml:"expect,omitempty"`
	Absent bool     `yaml:"absent,omitempty"`
	Items  []string `yaml:"items,omitempty"`
	Count  *int     `yaml:"count,omitempty"`
}

// Load чтение сценария из файла.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script file")
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse script").Str("script-path", path)
	}

	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Parse разбор сценария в формате YAML с проверкой корректности шагов.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, errors.Wrap(err, "validate step").Int("step", i).Str("op", string(step.Op))
		}
	}

	return &s, nil
}

func (s Step) validate() error {
	if !s.Op.known() {
		return ErrUnknownOp
	}

	if s.Expect != nil && s.Absent {
		return errors.New("expect and absent are mutually exclusive")
	}

	if (s.Expect != nil || s.Absent) && !s.Op.yieldsElement() {
		return errors.New("operation does not return an element to check")
	}

	if s.Items != nil && s.Op != OpList {
		return errors.New("items can only be checked with the list operation")
	}

	if s.Count != nil && s.Op != OpLen {
		return errors.New("count can only be checked with the len operation")
	}

	return nil
}
