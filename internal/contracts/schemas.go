package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/Akergez/2572371-six-cities-4/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Request types with an embedded schema.
const (
	CreateCommentRequest = "CreateCommentRequest"
	CreateOfferRequest   = "CreateOfferRequest"
	RegisterUserRequest  = "RegisterUserRequest"
	LoginUserRequest     = "LoginUserRequest"
	UpdateAvatarRequest  = "UpdateAvatarRequest"

	V1 = "1.0.0"
)

var (
	ErrSchemaNotFound = errors.New("schema not found")
	// ErrInvalidPayload wraps every body that is not JSON or does not match its schema.
	ErrInvalidPayload = errors.New("invalid payload")
)

const schemasRoot = "requests"

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	// every schema is registered first so that $ref between them resolves
	var paths []string
	err := fs.WalkDir(schemas.SchemasFS, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := fs.ReadFile(schemas.SchemasFS, path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
			continue
		}
		if key := generateKeyFromPath(path); key != "" {
			compiledSchemas[key] = schema
		}
	}
}

// generateKeyFromPath turns "requests/create-comment/v1.json"
// into "CreateCommentRequest/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, schemasRoot+"/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString("Request")

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// ValidateRequest checks a raw request body against the schema of requestType.
func ValidateRequest(requestType, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", requestType, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("%w: '%s' version '%s'", ErrSchemaNotFound, requestType, version)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return fmt.Errorf("%w: body is not valid JSON: %v", ErrInvalidPayload, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, describe(err))
	}
	return nil
}

// describe flattens a validation error into a single client-facing line.
func describe(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	leaves := collectLeaves(verr)
	msgs := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		location := leaf.InstanceLocation
		if location == "" {
			location = "/"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", location, leaf.Message))
	}
	return strings.Join(msgs, "; ")
}

func collectLeaves(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range verr.Causes {
		leaves = append(leaves, collectLeaves(cause)...)
	}
	return leaves
}
