package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/worldsync/models"
)

// stateFlags describes an entity either by a JSON state file or by a few
// common fields.
type stateFlags struct {
	file            string
	kind            string
	position        []float64
	color           string
	deleteWithOwner bool
	resourceRefs    []string
}

func bindStateFlags(fs *pflag.FlagSet) *stateFlags {
	sf := &stateFlags{}
	fs.StringVarP(&sf.file, "file", "f", "", "JSON file holding the entity state")
	fs.StringVar(&sf.kind, "kind", string(models.EntityGeneric), "entity kind (generic, mesh, light, audio)")
	fs.Float64SliceVar(&sf.position, "position", nil, "position as x,y,z")
	fs.StringVar(&sf.color, "color", "", "mesh or light color")
	fs.BoolVar(&sf.deleteWithOwner, "delete-with-owner", false, "remove the entity when its owner leaves")
	fs.StringSliceVar(&sf.resourceRefs, "ref", nil, "resource reference, repeatable")
	return sf
}

func (sf *stateFlags) request() (models.EntityRequest, error) {
	state, err := sf.state()
	if err != nil {
		return models.EntityRequest{}, err
	}

	return models.EntityRequest{
		State:           state,
		DeleteWithOwner: sf.deleteWithOwner,
		ResourceRefs:    sf.resourceRefs,
	}, nil
}

func (sf *stateFlags) state() (models.EntityState, error) {
	if sf.file != "" {
		raw, err := os.ReadFile(sf.file)
		if err != nil {
			return models.EntityState{}, fmt.Errorf("read state file: %w", err)
		}
		var state models.EntityState
		if err = json.Unmarshal(raw, &state); err != nil {
			return models.EntityState{}, fmt.Errorf("decode state file: %w", err)
		}
		return state, nil
	}

	state := models.EntityState{
		SchemaVersion: models.CurrentSchemaVersion,
		Kind:          models.EntityKind(sf.kind),
		Transform:     models.IdentityTransform(),
	}
	switch len(sf.position) {
	case 0:
	case 3:
		state.Transform.Position = models.Vector3{X: sf.position[0], Y: sf.position[1], Z: sf.position[2]}
	default:
		return models.EntityState{}, fmt.Errorf("%w: --position needs x,y,z", ErrUsage)
	}

	switch state.Kind {
	case models.EntityMesh:
		state.Mesh = &models.MeshState{Color: sf.color, Visible: true}
	case models.EntityLight:
		state.Light = &models.LightState{LightType: "point", Color: sf.color, Intensity: 1}
	case models.EntityAudio:
		state.Audio = &models.AudioState{Volume: 1}
	}

	return state, state.Validate()
}
