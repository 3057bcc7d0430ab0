package snapshot

import (
	"encoding/json"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
)

const (
	errKeyEmpty   = "key cannot be empty"
	errStateNil   = "state cannot be nil"
	errCorruptMsg = "stored hero state is corrupt"
)

func validateKey(key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}

func encodeRoster(state *entities.Roster) ([]byte, error) {
	if state == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}

	out := *state
	if out.Heroes == nil {
		out.Heroes = []*entities.Hero{}
	}

	data, err := json.Marshal(&out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal hero state")
	}
	return data, nil
}

func decodeRoster(key string, data []byte) (*entities.Roster, error) {
	var state entities.Roster
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, errCorruptMsg).
			WithMeta("key", key)
	}
	if state.Heroes == nil {
		state.Heroes = []*entities.Hero{}
	}
	return &state, nil
}

func emptyOutput() *LoadOutput {
	return &LoadOutput{
		State: &entities.Roster{Heroes: []*entities.Hero{}},
		Found: false,
	}
}
