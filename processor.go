package cipherkey

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

// tagTransform is the struct tag naming a field's method.
const tagTransform = "transform"

func init() {
	sentinel.Tag(tagTransform)
}

// Processor applies transforms to tagged struct fields at a serialization
// boundary. Seal runs forward transforms then marshals; Open unmarshals then
// runs inverse transforms.
//
//	type Message struct {
//	    ID   string `json:"id"`
//	    Body string `json:"body" transform:"aes"`
//	    Ref  string `json:"ref" transform:"base64"`
//	}
//
// Processors are safe for concurrent use. SetKey and SetEngine may be called
// at any time.
type Processor[T Cloner[T]] struct {
	codec Codec

	// Mutable configuration protected by mu
	mu     sync.RWMutex
	engine *Engine
	keys   map[Method]string

	// Immutable after construction
	fields   []processorFieldPlan
	typeName string
}

// processorFieldPlan describes how to transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	method     Method
	isBytes    bool  // true if field is []byte, false if string
	ptrIndices []int // indices where pointer dereference is needed
	isSlice    bool  // true if field is []string
	isMap      bool  // true if field is map[K]string
}

// NewProcessor creates a Processor for type T using the default engine.
// Tags naming an unknown method are rejected.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	spec := sentinel.Scan[T]()

	var fields []processorFieldPlan
	if err := buildFieldPlans(&fields, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		engine:   Default(),
		keys:     make(map[Method]string),
		fields:   fields,
		typeName: spec.TypeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), spec.TypeName, len(fields))
	return p, nil
}

// SetKey registers the key used for method.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetKey(method Method, key string) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys[method] = key
	return p
}

// SetEngine replaces the engine used for transforms.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetEngine(e *Engine) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engine = e
	return p
}

// Validate checks that every keyed method used by a tag has a key.
func (p *Processor[T]) Validate() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.validateKeys()
}

func (p *Processor[T]) validateKeys() error {
	for _, plan := range p.fields {
		info, _ := Describe(plan.method)
		if info.RequiresKey && p.keys[plan.method] == "" {
			return newConfigError(ErrMissingKey, plan.method, plan.name)
		}
	}
	return nil
}

// buildFieldPlans collects tagged fields, descending into nested structs.
func buildFieldPlans(plans *[]processorFieldPlan, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlans(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlans(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[tagTransform]
		if !ok {
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			return fmt.Errorf("%w: field %s of type %s cannot carry a transform", ErrInvalidTag, fullName, rt)
		}

		if !IsValidMethod(Method(val)) {
			return fmt.Errorf("%w: unknown method %q for field %s", ErrInvalidTag, val, fullName)
		}

		*plans = append(*plans, processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			method:     Method(val),
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(tagTransform); ok {
			fm.Tags[tagTransform] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// Seal applies forward transforms to a clone of obj and marshals the result.
func (p *Processor[T]) Seal(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitSealStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSealComplete(ctx, p.codec.ContentType(), p.typeName, len(retData), time.Since(start), retErr)
	}()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.validateKeys(); err != nil {
		retErr = err
		return nil, retErr
	}

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	if s, ok := any(&clone).(Sealable); ok {
		if err := s.Seal(p.engine, maps.Clone(p.keys)); err != nil {
			retErr = fmt.Errorf("seal: %w", err)
			return nil, retErr
		}
	} else if err := p.apply(ctx, &clone, Encrypt); err != nil {
		retErr = err
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Open unmarshals data and applies inverse transforms.
func (p *Processor[T]) Open(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitOpenStart(ctx, p.codec.ContentType(), p.typeName, len(data))

	var retErr error
	defer func() {
		emitOpenComplete(ctx, p.codec.ContentType(), p.typeName, time.Since(start), retErr)
	}()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.validateKeys(); err != nil {
		retErr = err
		return nil, retErr
	}

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if o, ok := any(&obj).(Openable); ok {
		if err := o.Open(p.engine, maps.Clone(p.keys)); err != nil {
			retErr = fmt.Errorf("open: %w", err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.apply(ctx, &obj, Decrypt); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// apply runs every field plan in direction dir. Caller holds p.mu.
func (p *Processor[T]) apply(ctx context.Context, obj *T, dir Direction) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.fields {
		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		run := func(name, value string) (string, error) {
			// Fields carry text; bytes that are not UTF-8 could not be opened again.
			if dir == Encrypt && !utf8.ValidString(value) {
				cause := fmt.Errorf("%w: value is not valid UTF-8", ErrInvalidCharacter)
				return "", &FieldError{Field: name, Method: plan.method, Direction: dir, Cause: cause}
			}
			out, err := p.engine.Transform(ctx, Request{
				Text:      value,
				Method:    plan.method,
				Direction: dir,
				Key:       p.keys[plan.method],
			})
			if err != nil {
				return "", &FieldError{Field: name, Method: plan.method, Direction: dir, Cause: err}
			}
			return out, nil
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := run(fmt.Sprintf("%s[%d]", plan.name, i), elem.String())
				if err != nil {
					return err
				}
				elem.SetString(out)
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := run(fmt.Sprintf("%s[%v]", plan.name, k.Interface()), v.String())
				if err != nil {
					return err
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		if plan.isBytes {
			if field.Len() == 0 {
				continue
			}
			out, err := run(plan.name, string(field.Bytes()))
			if err != nil {
				return err
			}
			field.SetBytes([]byte(out))
			continue
		}

		out, err := run(plan.name, field.String())
		if err != nil {
			return err
		}
		field.SetString(out)
	}

	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
