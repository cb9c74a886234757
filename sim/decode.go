package sim

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeStrict unmarshals a YAML node into dst with unknown-field rejection,
// the configuration-loading convention used throughout this codebase: a typo
// in a config file is a startup error, not a silently ignored default.
func decodeStrict(node *yaml.Node, dst interface{}) error {
	// The "type" discriminator selects dst and is not itself one of its fields.
	params := *node
	if node.Kind == yaml.MappingNode {
		params.Content = nil
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "type" {
				continue
			}
			params.Content = append(params.Content, node.Content[i], node.Content[i+1])
		}
	}
	dec := yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&params}}
	out, err := yaml.Marshal(&dec)
	if err != nil {
		return err
	}
	d := yaml.NewDecoder(strings.NewReader(string(out)))
	d.KnownFields(true)
	return d.Decode(dst)
}

// RunFile is the top-level shape of a simulation run's YAML configuration
// file, as loaded by the CLI.
type RunFile struct {
	Streaming  StreamingConfig `yaml:"streaming"`
	Throughput rawTagged       `yaml:"throughput"`
	Viewport   rawTagged       `yaml:"viewport"`
	Controller rawTagged       `yaml:"controller"`
	Allocator  rawTagged       `yaml:"allocator"`
	PoolSize   int             `yaml:"poolSize"`
}

// rawTagged is a YAML mapping carrying a "type" discriminator alongside its
// own parameters, captured as a raw node so it can be decoded into whichever
// concrete option struct its type names.
type rawTagged struct {
	Type string    `yaml:"type"`
	Node yaml.Node `yaml:"-"`
}

func (r *rawTagged) UnmarshalYAML(node *yaml.Node) error {
	type shape struct {
		Type string `yaml:"type"`
	}
	var s shape
	if err := node.Decode(&s); err != nil {
		return err
	}
	r.Type = s.Type
	r.Node = *node
	return nil
}

// DecodeThroughputOptions resolves a tagged YAML mapping into the concrete
// ThroughputPredictorOptions variant its "type" field names.
func DecodeThroughputOptions(r rawTagged) (ThroughputPredictorOptions, error) {
	switch r.Type {
	case "ema":
		var o EMAOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding ema throughput predictor options: %w", err)
		}
		return o, nil
	case "moving-average":
		var o MovingAverageOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding moving-average throughput predictor options: %w", err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unrecognized throughput predictor type %q", r.Type)
	}
}

// DecodeViewportOptions resolves a tagged YAML mapping into the concrete
// ViewportPredictorOptions variant its "type" field names.
func DecodeViewportOptions(r rawTagged) (ViewportPredictorOptions, error) {
	switch r.Type {
	case "static":
		return StaticOptions{}, nil
	case "linear":
		var o LinearOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding linear viewport predictor options: %w", err)
		}
		return o, nil
	case "gravitational":
		var o GravitationalOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding gravitational viewport predictor options: %w", err)
		}
		return o, nil
	case "navgraph":
		var o NavGraphOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding navgraph viewport predictor options: %w", err)
		}
		return o, nil
	case "offline":
		var o OfflineOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding offline viewport predictor options: %w", err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unrecognized viewport predictor type %q", r.Type)
	}
}

// DecodeControllerOptions resolves a tagged YAML mapping into the concrete
// AggregateControllerOptions variant its "type" field names.
func DecodeControllerOptions(r rawTagged) (AggregateControllerOptions, error) {
	switch r.Type {
	case "throughput-based":
		var o ThroughputBasedOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding throughput-based controller options: %w", err)
		}
		return o, nil
	case "model-predictive":
		var o ModelPredictiveOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding model-predictive controller options: %w", err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unrecognized aggregate controller type %q", r.Type)
	}
}

// DecodeAllocatorOptions resolves a tagged YAML mapping into the concrete
// BitrateAllocatorOptions variant its "type" field names.
func DecodeAllocatorOptions(r rawTagged) (BitrateAllocatorOptions, error) {
	switch r.Type {
	case "hybrid":
		var o HybridOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding hybrid allocator options: %w", err)
		}
		return o, nil
	case "bola":
		var o BOLAOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding bola allocator options: %w", err)
		}
		return o, nil
	case "flare":
		var o FlareOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding flare allocator options: %w", err)
		}
		return o, nil
	case "dragonfly":
		var o DragonflyOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding dragonfly allocator options: %w", err)
		}
		return o, nil
	case "online-learning":
		var o OnlineLearningOptions
		if err := decodeStrict(&r.Node, &o); err != nil {
			return nil, fmt.Errorf("decoding online-learning allocator options: %w", err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unrecognized bitrate allocator type %q", r.Type)
	}
}

// LoadRunFile reads and strictly decodes a simulation run's YAML
// configuration.
func LoadRunFile(data []byte) (RunFile, error) {
	var rf RunFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return RunFile{}, fmt.Errorf("decoding run configuration: %w", err)
	}
	return rf, nil
}

// TracesFile is the YAML shape of the paired network/viewport traces fed to
// a simulation run; sessions are matched by index between the two slices.
type TracesFile struct {
	NetworkTraces  []NetworkTrace  `yaml:"networkTraces"`
	ViewportTraces []ViewportTrace `yaml:"viewportTraces"`
}

// LoadTracesFile reads and strictly decodes a traces YAML document.
func LoadTracesFile(data []byte) (TracesFile, error) {
	var tf TracesFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return TracesFile{}, fmt.Errorf("decoding traces: %w", err)
	}
	return tf, nil
}
