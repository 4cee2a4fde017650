package loaders

import (
	"os"

	"github.com/google/uuid"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
)

type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string, params interface{}) (*types.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &types.Resource{
		ID:       uuid.New().String(),
		Name:     "shader",
		FullPath: path,
		DataSize: uint64(len(data)),
		Data: &types.ShaderResourceData{
			Source: string(data),
		},
	}, nil
}

func (sl *ShaderLoader) Unload(resource *types.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}
