package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateReference gera um identificador curto para exibição (ex.: referência de fatura)
func GenerateReference() (string, error) {
	return gonanoid.Generate(characters, 6)
}
