package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gpietz/go-gl-forge/engine/assets/loaders"
	"github.com/gpietz/go-gl-forge/engine/assets/types"
	"github.com/gpietz/go-gl-forge/engine/core"
)

type AssetInfo struct {
	Path       string
	Type       types.ResourceType
	LastLoaded time.Time
}

type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[types.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool

	// Paths modified on disk since the last Pump call. Written by the
	// watcher goroutine, drained on the main thread.
	modified []string
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[types.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Initialize indexes the assets directory, registers the loaders and starts
// the change watcher. watch can be disabled for headless runs and tests.
func (am *AssetManager) Initialize(assetsDir string, watch bool) error {
	am.root = assetsDir

	if err := am.indexDir(assetsDir); err != nil {
		return err
	}

	// Register loaders
	am.registerLoader(types.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(types.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(types.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	if watch {
		if err := am.watchRecursive(assetsDir); err != nil {
			return err
		}
		go am.start()
	}

	core.LogInfo("Asset subsystem initialized with root %q (%d assets).", assetsDir, len(am.assets))
	return nil
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// Pump fires EVENT_CODE_ASSET_MODIFIED for every file changed on disk since
// the previous call. Must run on the main thread; event dispatch is not
// synchronized anywhere else.
func (am *AssetManager) Pump() {
	am.mutex.Lock()
	pending := am.modified
	am.modified = nil
	am.mutex.Unlock()

	for _, path := range pending {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_ASSET_MODIFIED,
			Data: path,
		})
	}
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType types.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads a previously indexed asset using the loader registered for
// its type. path is relative to the assets root.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*types.Resource, error) {
	fullPath := filepath.Join(am.root, path)

	am.mutex.RLock()
	asset, exists := am.assets[fullPath]
	am.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s", fullPath)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %d", asset.Type)
	}

	am.mutex.Lock()
	asset.LastLoaded = time.Now()
	am.assets[fullPath] = asset
	am.mutex.Unlock()

	resource, err := loader.Load(fullPath, params)
	if err != nil {
		return nil, err
	}
	core.LogDebug("loaded asset %s (%d bytes)", fullPath, resource.DataSize)
	return resource, nil
}

func (am *AssetManager) UnloadAsset(resource *types.Resource) error {
	am.mutex.RLock()
	asset, exists := am.assets[resource.FullPath]
	am.mutex.RUnlock()
	if !exists {
		return nil
	}
	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil
	}
	return loader.Unload(resource)
}

func (am *AssetManager) start() {
	for {
		select {

		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name)
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// indexDir walks the tree once and records every recognized asset.
func (am *AssetManager) indexDir(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		am.indexFile(walkPath)
		return nil
	})
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(path string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func (am *AssetManager) indexFile(path string) types.ResourceType {
	assetType := determineAssetType(path)
	if assetType == types.ResourceTypeNone {
		return assetType
	}
	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path: path,
		Type: assetType,
	}
	am.mutex.Unlock()
	return assetType
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	if am.indexFile(path) == types.ResourceTypeNone {
		return
	}
	am.mutex.Lock()
	am.modified = append(am.modified, path)
	am.mutex.Unlock()
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) types.ResourceType {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl":
		return types.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff":
		return types.ResourceTypeImage
	case ".fnt":
		return types.ResourceTypeBitmapFont
	default:
		return types.ResourceTypeNone
	}
}
