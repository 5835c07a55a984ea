// Package config implements the configuration loader: reading
// symlsConfig.json (if present), rebinding keyword/operator/datatype
// spellings, applying declaration defaults, and resolving I/O redirection.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/symls-lang/symls/internal/keywords"
)

// IO holds the configuration loader's resolved I/O redirection paths.
// An empty field means "use the standard stream" ("stdin"/"stdout"/"stderr"
// in the file map to empty here).
type IO struct {
	InputFile        string
	OutputFile       string
	ErrorFile        string
	PreProcessedFile string
}

// DefaultPreProcessedFile is used when io.preProcessedFile is absent from
// the configuration file.
const DefaultPreProcessedFile = "preprocessed.symls"

// Config is the fully-resolved result of a configuration load: the
// rebound keyword registry plus I/O redirection.
type Config struct {
	Registry *keywords.Registry
	IO       IO
}

// Load reads path (if it exists) and returns a Config built from the
// built-in registry with every recognised field from the file applied on
// top of it. A missing file is not an error: Load then returns the
// built-in defaults with no I/O redirection.
func Load(path string) (Config, error) {
	reg := keywords.Default()
	cfg := Config{
		Registry: reg,
		IO:       IO{PreProcessedFile: DefaultPreProcessedFile},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("config: %s is not valid JSON", path)
	}
	root := gjson.ParseBytes(data)

	applyIO(&cfg.IO, root)
	applyKeywords(reg, root)
	applyDataTypes(reg, root)
	applyMathOperators(reg, root)
	applyLogicOperators(reg, root)
	applyErrorMessages(reg, root)
	applyDefaults(reg, root)

	return cfg, nil
}

func str(root gjson.Result, path, fallback string) string {
	v := root.Get(path)
	if !v.Exists() || v.String() == "" {
		return fallback
	}
	return v.String()
}

func applyIO(io *IO, root gjson.Result) {
	if v := root.Get("io.inputFile"); v.Exists() && v.String() != "stdin" {
		io.InputFile = v.String()
	}
	if v := root.Get("io.outputFile"); v.Exists() && v.String() != "stdout" {
		io.OutputFile = v.String()
	}
	if v := root.Get("io.errorFile"); v.Exists() && v.String() != "stderr" {
		io.ErrorFile = v.String()
	}
	if v := root.Get("io.preProcessedFile"); v.Exists() {
		io.PreProcessedFile = v.String()
	}
}

func applyKeywords(reg *keywords.Registry, root gjson.Result) {
	reg.Let = str(root, "keywords.let", reg.Let)
	reg.Is = str(root, "keywords.is", reg.Is)
	reg.If = str(root, "keywords.if", reg.If)
	reg.Else = str(root, "keywords.else", reg.Else)
	reg.Then = str(root, "keywords.then", reg.Then)
	reg.Skip = str(root, "keywords.skip", reg.Skip)
	reg.Stop = str(root, "keywords.stop", reg.Stop)
	reg.Do = str(root, "keywords.do", reg.Do)
	reg.While = str(root, "keywords.while", reg.While)
	reg.Escape = str(root, "keywords.escape", reg.Escape)
	reg.Recheck = str(root, "keywords.recheck", reg.Recheck)
	reg.TillHere = str(root, "keywords.tillHere", reg.TillHere)
	reg.And = str(root, "keywords.and", reg.And)
	reg.Goto = str(root, "keywords.goto", reg.Goto)
	reg.Read = str(root, "keywords.read", reg.Read)
	reg.Print = str(root, "keywords.print", reg.Print)
	reg.Newline = str(root, "keywords.newline", reg.Newline)
	reg.Leave = str(root, "keywords.leave", reg.Leave)
	reg.End = str(root, "keywords.end", reg.End)
	reg.Subroutine = str(root, "keywords.subroutine", reg.Subroutine)
}

func applyDataTypes(reg *keywords.Registry, root gjson.Result) {
	reg.Integer = str(root, "datatypes.integer", reg.Integer)
	reg.Text = str(root, "datatypes.text", reg.Text)
	reg.Real = str(root, "datatypes.real", reg.Real)
	reg.IntegerArray = str(root, "datatypes.integerArray", reg.IntegerArray)
	reg.TextArray = str(root, "datatypes.textArray", reg.TextArray)
	reg.RealArray = str(root, "datatypes.realArray", reg.RealArray)
}

func applyMathOperators(reg *keywords.Registry, root gjson.Result) {
	reg.Plus = str(root, "operators.math.plus", reg.Plus)
	reg.Minus = str(root, "operators.math.minus", reg.Minus)
	reg.Into = str(root, "operators.math.into", reg.Into)
	reg.Upon = str(root, "operators.math.upon", reg.Upon)
	reg.Modulo = str(root, "operators.math.modulo", reg.Modulo)
	reg.Exponent = str(root, "operators.math.exponent", reg.Exponent)
}

func applyLogicOperators(reg *keywords.Registry, root gjson.Result) {
	reg.EqualTo = str(root, "operators.logic.equals", reg.EqualTo)
	reg.NotEqualTo = str(root, "operators.logic.notEquals", reg.NotEqualTo)
	reg.GreaterThan = str(root, "operators.logic.greaterThan", reg.GreaterThan)
	reg.LessThan = str(root, "operators.logic.lessThan", reg.LessThan)
}

func applyErrorMessages(reg *keywords.Registry, root gjson.Result) {
	reg.Errors.InvalidSyntax = str(root, "errorMessages.invalidSyntax", reg.Errors.InvalidSyntax)
	reg.Errors.InvalidDataType = str(root, "errorMessages.invalidDataType", reg.Errors.InvalidDataType)
	reg.Errors.InvalidOperator = str(root, "errorMessages.invalidOperator", reg.Errors.InvalidOperator)
	reg.Errors.VariableNotFound = str(root, "errorMessages.variableNotFound", reg.Errors.VariableNotFound)
	reg.Errors.IndexOutOfBounds = str(root, "errorMessages.indexOutOfBounds", reg.Errors.IndexOutOfBounds)
	reg.Errors.InvalidName = str(root, "errorMessages.invalidName", reg.Errors.InvalidName)
}

func applyDefaults(reg *keywords.Registry, root gjson.Result) {
	if v := root.Get("defaults.arraySize"); v.Exists() {
		reg.DefaultArraySize = int(v.Int())
	}
	if v := root.Get("defaults.integerValue"); v.Exists() {
		reg.DefaultIntegerValue = v.Int()
	}
	if v := root.Get("defaults.realValue"); v.Exists() {
		reg.DefaultRealValue = v.Float()
	}
	if v := root.Get("defaults.textValue"); v.Exists() {
		reg.DefaultTextValue = v.String()
	}
}

// WriteDefault materialises reg's current spellings and defaults as a
// symlsConfig.json document at path, building the JSON one dotted path at
// a time via sjson rather than marshalling a mirrored Go struct. This is
// how `--dump-config` seeds an editable starting point for a user who
// wants to rebind a handful of keywords without retyping all twenty.
func WriteDefault(reg *keywords.Registry, path string) error {
	doc := "{}"
	var err error

	sets := map[string]interface{}{
		"keywords.let": reg.Let, "keywords.is": reg.Is, "keywords.if": reg.If,
		"keywords.else": reg.Else, "keywords.then": reg.Then, "keywords.skip": reg.Skip,
		"keywords.stop": reg.Stop, "keywords.do": reg.Do, "keywords.while": reg.While,
		"keywords.escape": reg.Escape, "keywords.recheck": reg.Recheck,
		"keywords.tillHere": reg.TillHere, "keywords.and": reg.And, "keywords.goto": reg.Goto,
		"keywords.read": reg.Read, "keywords.print": reg.Print, "keywords.newline": reg.Newline,
		"keywords.leave": reg.Leave, "keywords.end": reg.End, "keywords.subroutine": reg.Subroutine,

		"datatypes.integer": reg.Integer, "datatypes.text": reg.Text, "datatypes.real": reg.Real,
		"datatypes.integerArray": reg.IntegerArray, "datatypes.textArray": reg.TextArray,
		"datatypes.realArray": reg.RealArray,

		"operators.math.plus": reg.Plus, "operators.math.minus": reg.Minus,
		"operators.math.into": reg.Into, "operators.math.upon": reg.Upon,
		"operators.math.modulo": reg.Modulo, "operators.math.exponent": reg.Exponent,

		"operators.logic.equals": reg.EqualTo, "operators.logic.notEquals": reg.NotEqualTo,
		"operators.logic.greaterThan": reg.GreaterThan, "operators.logic.lessThan": reg.LessThan,

		"errorMessages.invalidSyntax": reg.Errors.InvalidSyntax,
		"errorMessages.invalidDataType": reg.Errors.InvalidDataType,
		"errorMessages.invalidOperator": reg.Errors.InvalidOperator,
		"errorMessages.variableNotFound": reg.Errors.VariableNotFound,
		"errorMessages.indexOutOfBounds": reg.Errors.IndexOutOfBounds,
		"errorMessages.invalidName": reg.Errors.InvalidName,

		"defaults.arraySize": reg.DefaultArraySize, "defaults.integerValue": reg.DefaultIntegerValue,
		"defaults.realValue": reg.DefaultRealValue, "defaults.textValue": reg.DefaultTextValue,

		"io.inputFile": "stdin", "io.outputFile": "stdout", "io.errorFile": "stderr",
		"io.preProcessedFile": DefaultPreProcessedFile,
	}
	for path, value := range sets {
		doc, err = sjson.Set(doc, path, value)
		if err != nil {
			return fmt.Errorf("config: building default document: %w", err)
		}
	}

	return os.WriteFile(path, []byte(doc), 0o644)
}
