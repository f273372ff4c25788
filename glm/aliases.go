package glm

type Vec4f = Vec4[float32]

type Vec4u = Vec4[uint32]
