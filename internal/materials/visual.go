package materials

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"shapespawn/internal/engine"
)

const (
	KindPreviewSurface = "preview_surface"
	KindMdlFile        = "mdl_file"
	KindGlassMdl       = "glass_mdl"
)

// ShaderName is the name of the shader prim authored under every visual material.
const ShaderName = "Shader"

// PreviewSurfaceCfg is a UsdPreviewSurface material.
type PreviewSurfaceCfg struct {
	DiffuseColor  [3]float32 `yaml:"diffuse_color" json:"diffuse_color"`
	EmissiveColor [3]float32 `yaml:"emissive_color" json:"emissive_color"`
	Roughness     float32    `yaml:"roughness" json:"roughness"`
	Metallic      float32    `yaml:"metallic" json:"metallic"`
	Opacity       float32    `yaml:"opacity" json:"opacity"`
}

func NewPreviewSurface() *PreviewSurfaceCfg {
	return &PreviewSurfaceCfg{
		DiffuseColor: [3]float32{0.18, 0.18, 0.18},
		Roughness:    0.5,
		Opacity:      1.0,
	}
}

func (*PreviewSurfaceCfg) Kind() string { return KindPreviewSurface }

// MdlFileCfg is a material loaded from an MDL module.
type MdlFileCfg struct {
	MdlPath          string      `yaml:"mdl_path" json:"mdl_path"`
	ProjectUVW       *bool       `yaml:"project_uvw,omitempty" json:"project_uvw,omitempty"`
	AlbedoBrightness *float32    `yaml:"albedo_brightness,omitempty" json:"albedo_brightness,omitempty"`
	TextureScale     *[2]float32 `yaml:"texture_scale,omitempty" json:"texture_scale,omitempty"`
}

func (*MdlFileCfg) Kind() string { return KindMdlFile }

// GlassMdlCfg is the stock glass MDL material.
type GlassMdlCfg struct {
	GlassColor        [3]float32 `yaml:"glass_color" json:"glass_color"`
	FrostingRoughness float32    `yaml:"frosting_roughness" json:"frosting_roughness"`
	ThinWalled        bool       `yaml:"thin_walled" json:"thin_walled"`
	GlassIOR          float32    `yaml:"glass_ior" json:"glass_ior"`
}

func NewGlassMdl() *GlassMdlCfg {
	return &GlassMdlCfg{
		GlassColor: [3]float32{1, 1, 1},
		GlassIOR:   1.491,
	}
}

func (*GlassMdlCfg) Kind() string { return KindGlassMdl }

const glassMdlPath = "OmniGlass.mdl"

var ErrMissingMdlPath = errors.New("mdl path is empty")

func spawnPreviewSurface(store engine.Store, p string, cfg VisualMaterialCfg) (*engine.Prim, error) {
	c, ok := cfg.(*PreviewSurfaceCfg)
	if !ok {
		return nil, fmt.Errorf("preview surface: unexpected config %T", cfg)
	}
	if !renderingAvailable(store) {
		return nil, nil
	}
	return defineShadedMaterial(store, p, "surface", map[string]any{
		"info:id":              "UsdPreviewSurface",
		"inputs:diffuseColor":  c.DiffuseColor,
		"inputs:emissiveColor": c.EmissiveColor,
		"inputs:roughness":     c.Roughness,
		"inputs:metallic":      c.Metallic,
		"inputs:opacity":       c.Opacity,
	})
}

func spawnMdlFile(store engine.Store, p string, cfg VisualMaterialCfg) (*engine.Prim, error) {
	c, ok := cfg.(*MdlFileCfg)
	if !ok {
		return nil, fmt.Errorf("mdl material: unexpected config %T", cfg)
	}
	if c.MdlPath == "" {
		return nil, fmt.Errorf("mdl material at %s: %w", p, ErrMissingMdlPath)
	}
	if !renderingAvailable(store) {
		return nil, nil
	}
	attrs := mdlShaderAttributes(c.MdlPath)
	if c.ProjectUVW != nil {
		attrs["inputs:project_uvw"] = *c.ProjectUVW
	}
	if c.AlbedoBrightness != nil {
		attrs["inputs:albedo_brightness"] = *c.AlbedoBrightness
	}
	if c.TextureScale != nil {
		attrs["inputs:texture_scale"] = *c.TextureScale
	}
	return defineShadedMaterial(store, p, "mdl:surface", attrs)
}

func spawnGlassMdl(store engine.Store, p string, cfg VisualMaterialCfg) (*engine.Prim, error) {
	c, ok := cfg.(*GlassMdlCfg)
	if !ok {
		return nil, fmt.Errorf("glass material: unexpected config %T", cfg)
	}
	if !renderingAvailable(store) {
		return nil, nil
	}
	attrs := mdlShaderAttributes(glassMdlPath)
	attrs["inputs:glass_color"] = c.GlassColor
	attrs["inputs:frosting_roughness"] = c.FrostingRoughness
	attrs["inputs:thin_walled"] = c.ThinWalled
	attrs["inputs:glass_ior"] = c.GlassIOR
	return defineShadedMaterial(store, p, "mdl:surface", attrs)
}

func mdlShaderAttributes(mdlPath string) map[string]any {
	return map[string]any{
		"info:implementationSource":          "sourceAsset",
		"info:mdl:sourceAsset":               mdlPath,
		"info:mdl:sourceAsset:subIdentifier": strings.TrimSuffix(path.Base(mdlPath), path.Ext(mdlPath)),
	}
}

// defineShadedMaterial authors a Material with a single Shader child wired to
// the material's output. A material already authored at p is returned untouched.
func defineShadedMaterial(store engine.Store, p, output string, shaderAttrs map[string]any) (*engine.Prim, error) {
	mat, created, err := defineMaterialPrim(store, p)
	if err != nil || !created {
		return mat, err
	}
	shader, err := store.Create(engine.JoinPath(p, ShaderName), engine.TypeShader, nil, shaderAttrs)
	if err != nil {
		return nil, fmt.Errorf("define shader for %s: %w", p, err)
	}
	mat.SetRelationship("outputs:"+output, shader.Path+".outputs:out")
	return mat, nil
}
