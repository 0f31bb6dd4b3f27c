package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-forgery"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// Parameterized kinds offered by the wizard alongside the built-in leaf
// kinds.
var wizardKinds = append([]string{
	"int range", "float range", "text", "date range", "choice",
}, schema.BuiltinKinds...)

// runWizard builds a schema from interactive prompts, one field at a time.
func runWizard() (forgery.Schema, error) {
	s := forgery.Schema{}
	for {
		var name string
		prompt := &survey.Input{Message: "Field name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		if _, exists := s[name]; exists {
			fmt.Printf("field %q already defined\n", name)
			continue
		}

		var kind string
		sel := &survey.Select{
			Message:  fmt.Sprintf("Kind for %q:", name),
			Options:  wizardKinds,
			PageSize: 12,
		}
		if err := survey.AskOne(sel, &kind); err != nil {
			return nil, err
		}

		spec, err := promptSpec(kind)
		if err != nil {
			return nil, err
		}
		s[name] = spec

		var more bool
		confirm := &survey.Confirm{Message: "Add another field?", Default: true}
		if err := survey.AskOne(confirm, &more); err != nil {
			return nil, err
		}
		if !more {
			return s, nil
		}
	}
}

func promptSpec(kind string) (forgery.FieldSpec, error) {
	switch kind {
	case "int range":
		min, err := promptInt("Minimum (inclusive):", "0")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		max, err := promptInt("Maximum (inclusive):", "100")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		return schema.IntRange(min, max), nil

	case "float range":
		min, err := promptFloat("Minimum:", "0")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		max, err := promptFloat("Maximum:", "1")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		return schema.FloatRange(min, max), nil

	case "text":
		min, err := promptInt("Minimum characters:", "50")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		max, err := promptInt("Maximum characters:", "200")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		return schema.TextRange(int(min), int(max)), nil

	case "date range":
		start, err := promptString("Start date (YYYY-MM-DD):", "2000-01-01")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		end, err := promptString("End date (YYYY-MM-DD):", "2030-12-31")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		return schema.DateRange(start, end), nil

	case "choice":
		raw, err := promptString("Options (comma separated):", "")
		if err != nil {
			return forgery.FieldSpec{}, err
		}
		options := make([]string, 0)
		for _, opt := range strings.Split(raw, ",") {
			if opt = strings.TrimSpace(opt); opt != "" {
				options = append(options, opt)
			}
		}
		return schema.Choice(options...), nil

	default:
		return schema.Builtin(kind), nil
	}
}

func promptString(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, err
}

func promptInt(message, def string) (int64, error) {
	raw, err := promptString(message, def)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func promptFloat(message, def string) (float64, error) {
	raw, err := promptString(message, def)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
