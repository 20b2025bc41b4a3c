package catalog

import "strings"

// LayerName identifies one compositing layer of a portrait.
type LayerName string

const (
	LayerBackground     LayerName = "Background"
	LayerClothesBack    LayerName = "ClothesBack"
	LayerHairBack       LayerName = "HairBack"
	LayerBody           LayerName = "Body"
	LayerClothes        LayerName = "Clothes"
	LayerEars           LayerName = "Ears"
	LayerAccessoryHead  LayerName = "AccessoryHead"
	LayerHeadshape      LayerName = "Headshape"
	LayerDetailUpper    LayerName = "DetailUpper"
	LayerDetailLower    LayerName = "DetailLower"
	LayerHair           LayerName = "Hair"
	LayerMouth          LayerName = "Mouth"
	LayerBeard          LayerName = "Beard"
	LayerMoustache      LayerName = "Moustache"
	LayerEyes           LayerName = "Eyes"
	LayerEyebrows       LayerName = "Eyebrows"
	LayerAccessoryFace  LayerName = "AccessoryFace"
	LayerNose           LayerName = "Nose"
	LayerBlemish        LayerName = "Blemish"
	LayerAccessoryFront LayerName = "AccessoryFront"
)

// ColorClass groups layers that share one tint palette.
type ColorClass string

const (
	ColorNone       ColorClass = ""
	ColorSkin       ColorClass = "Skin"
	ColorHair       ColorClass = "Hair"
	ColorEye        ColorClass = "Eye"
	ColorAccessory  ColorClass = "Accessory"
	ColorLip        ColorClass = "Lip"
	ColorClothes    ColorClass = "Clothes"
	ColorBackground ColorClass = "Background"
)

// Layer describes one compositing layer. Higher Order renders further back.
type Layer struct {
	Name       LayerName
	Order      int
	Folder     string
	Category   string
	ColorClass ColorClass
	CanBeNone  bool
}

// BaseName is the lower-cased second token of the folder, used as the
// filename prefix for every sprite of the layer.
func (l Layer) BaseName() string {
	parts := strings.Split(l.Folder, "_")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// registry lists layers back to front.
var registry = []Layer{
	{Name: LayerBackground, Order: 20, Folder: "20_Background_Background", Category: "Background", ColorClass: ColorBackground, CanBeNone: true},
	{Name: LayerClothesBack, Order: 19, Folder: "19_ClothesBack_Clothes", Category: "ClothesBack", ColorClass: ColorClothes},
	{Name: LayerHairBack, Order: 18, Folder: "18_HairBack_Hair", Category: "HairBack", ColorClass: ColorHair, CanBeNone: true},
	{Name: LayerBody, Order: 17, Folder: "17_Body_Skin", Category: "Body", ColorClass: ColorSkin},
	{Name: LayerClothes, Order: 16, Folder: "16_Clothes_Clothes", Category: "Clothes", ColorClass: ColorClothes},
	{Name: LayerEars, Order: 15, Folder: "15_Ears_Skin", Category: "Ears", ColorClass: ColorSkin},
	{Name: LayerAccessoryHead, Order: 14, Folder: "14_Accessory_Accessory", Category: "Accessory", ColorClass: ColorAccessory, CanBeNone: true},
	{Name: LayerHeadshape, Order: 13, Folder: "13_Headshape_Skin", Category: "Headshape", ColorClass: ColorSkin},
	{Name: LayerDetailUpper, Order: 12, Folder: "12_Detail_Skin", Category: "Detail", ColorClass: ColorSkin, CanBeNone: true},
	{Name: LayerDetailLower, Order: 11, Folder: "11_Detail_Skin", Category: "Detail", ColorClass: ColorSkin, CanBeNone: true},
	{Name: LayerHair, Order: 10, Folder: "10_Hair_Hair", Category: "Hair", ColorClass: ColorHair},
	{Name: LayerMouth, Order: 9, Folder: "9_Mouth_Lip", Category: "Mouth", ColorClass: ColorLip, CanBeNone: true},
	{Name: LayerBeard, Order: 8, Folder: "8_Beard_Hair", Category: "Beard", ColorClass: ColorHair, CanBeNone: true},
	{Name: LayerMoustache, Order: 7, Folder: "7_Moustache_Hair", Category: "Moustache", ColorClass: ColorHair, CanBeNone: true},
	{Name: LayerEyes, Order: 5, Folder: "5_Eyes_Eye", Category: "Eyes", ColorClass: ColorEye},
	{Name: LayerEyebrows, Order: 4, Folder: "4_Eyebrows_Hair", Category: "Eyebrows", ColorClass: ColorHair},
	{Name: LayerAccessoryFace, Order: 3, Folder: "3_Accessory_Accessory", Category: "Accessory", ColorClass: ColorAccessory, CanBeNone: true},
	{Name: LayerNose, Order: 2, Folder: "2_Nose_Skin", Category: "Nose", ColorClass: ColorSkin},
	{Name: LayerBlemish, Order: 1, Folder: "1_Blemish_Skin", Category: "Blemish", ColorClass: ColorSkin, CanBeNone: true},
	{Name: LayerAccessoryFront, Order: 0, Folder: "0_Accessory_Accessory", Category: "Accessory", ColorClass: ColorAccessory, CanBeNone: true},
}

var registryByName = func() map[LayerName]Layer {
	out := make(map[LayerName]Layer, len(registry))
	for _, layer := range registry {
		out[layer.Name] = layer
	}
	return out
}()

// Layers returns the layer registry back to front.
func Layers() []Layer {
	out := make([]Layer, len(registry))
	copy(out, registry)
	return out
}

// LayerByName looks up one registry entry.
func LayerByName(name LayerName) (Layer, bool) {
	layer, ok := registryByName[name]
	return layer, ok
}

// ParseLayerName matches a layer name case-insensitively.
func ParseLayerName(raw string) (LayerName, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layer := range registry {
		if strings.EqualFold(string(layer.Name), trimmed) {
			return layer.Name, true
		}
	}
	return "", false
}
