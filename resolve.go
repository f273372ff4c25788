package swatch

import "github.com/oliverbestmann/swatch/driver"

// resolveWrap reconciles the wrap mode requested on the texture node with
// the opinion authored in the texture file metadata.
//
// An explicit wrap mode always wins over the file. WrapNoOpinion adopts the
// file opinion verbatim, which may itself be "no opinion". The legacy
// sentinel only exists for one historical uv texture node type: it adopts
// the file opinion too, but falls back to repeat when the file has none.
func resolveWrap(param, fileOpinion driver.Wrap) driver.Wrap {
	if param == driver.WrapNoOpinion {
		param = fileOpinion
	}

	if param == driver.WrapLegacyNoOpinionFallbackRepeat {
		if fileOpinion == driver.WrapNoOpinion {
			return driver.WrapRepeat
		}

		return fileOpinion
	}

	return param
}

// resolveUvParameters resolves wrapS and wrapT against the texture file.
// WrapR and the filters pass through untouched: uv textures have no R axis,
// and filter modes are never authored in texture files.
func resolveUvParameters(texture UvTexture, params SamplerParameters) SamplerParameters {
	fileS, fileT := texture.WrapParameters()

	params.WrapS = resolveWrap(params.WrapS, fileS)
	params.WrapT = resolveWrap(params.WrapT, fileT)

	return params
}
