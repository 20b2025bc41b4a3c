package catalog

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// detailSplitIndex is the first Detail index stored in the upper folder.
const detailSplitIndex = 10

// AssetID names one sprite file inside the sprite root.
type AssetID struct {
	Root     string
	Folder   string
	Filename string
}

// Key returns the object key relative to the storage base, e.g.
// "PortraitSprites/10_Hair_Hair/hair_09_03_female.png".
func (a AssetID) Key() string {
	return path.Join(a.Root, a.Folder, a.Filename)
}

// Path joins the asset key onto a filesystem or URL path prefix.
func (a AssetID) Path(base string) string {
	return path.Join(base, a.Key())
}

// URL resolves the asset against a CDN or bucket base URL.
func (a AssetID) URL(baseURL string) (string, error) {
	return ResolveAssetURL(baseURL, a.Key())
}

func (a AssetID) String() string {
	return a.Folder + "/" + a.Filename
}

// Resolve maps a selection to its sprite. ok is false when the layer is
// absent (index or variant -1), the layer is unknown, or the index is
// female-only and gender is not Female. Resolve does not check that the
// variant is catalogued; pair it with IsValidSelection for that.
func (c *Catalog) Resolve(layer LayerName, index, variant int, gender Gender) (AssetID, bool) {
	if index < 0 || variant < 0 {
		return AssetID{}, false
	}
	entry, ok := LayerByName(layer)
	if !ok {
		return AssetID{}, false
	}
	category, ok := c.categories[entry.Category]
	if !ok {
		return AssetID{}, false
	}
	if category.femaleOnlyIndices[index] && !gender.IsFemale() {
		return AssetID{}, false
	}
	filename := fmt.Sprintf("%s_%02d_%02d%s", entry.BaseName(), index, variant, category.suffixFor(index, gender))
	return AssetID{Root: c.SpriteRoot, Folder: assetFolder(entry, index), Filename: filename}, true
}

// assetFolder applies the folder aliases: the head and front accessory
// layers reuse the face accessory sprites, and both Detail layers read from
// a folder chosen by index.
func assetFolder(layer Layer, index int) string {
	switch layer.Name {
	case LayerAccessoryFront, LayerAccessoryHead:
		return "3_Accessory_Accessory"
	case LayerDetailUpper, LayerDetailLower:
		if index < detailSplitIndex {
			return "11_Detail_Skin"
		}
		return "12_Detail_Skin"
	default:
		return layer.Folder
	}
}

// ResolveAssetURL joins a CDN/object-storage base URL with an asset key.
func ResolveAssetURL(baseURL, assetKey string) (string, error) {
	base := strings.TrimSpace(baseURL)
	key := strings.TrimSpace(assetKey)
	if base == "" || key == "" {
		return "", fmt.Errorf("asset url: base url and key are required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	parsed.Path = path.Join(parsed.Path, key)
	return parsed.String(), nil
}
