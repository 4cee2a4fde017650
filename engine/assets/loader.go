package assets

import "github.com/gpietz/go-gl-forge/engine/assets/types"

type Loader interface {
	Load(path string, params interface{}) (*types.Resource, error) // `interface{}` here allows loaders to take various parameter types
	Unload(*types.Resource) error
}
