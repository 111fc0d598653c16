// ABOUTME: Static oracle card deck with a deterministic per-date draw
// ABOUTME: Same calendar date always yields the same card
package oracle

import "hash/fnv"

// Card is one oracle card: a symbol, its reading and a suggested action.
type Card struct {
	Title   string `json:"title"`
	Meaning string `json:"meaning"`
	Action  string `json:"action"`
	Element string `json:"element"`
}

// Deck is the fixed card set, in printing order.
var Deck = []Card{
	{
		Title:   "O Espelho Nebuloso",
		Meaning: "Algo em você pede para ser visto com clareza. As névoas se dissipam quando você para de fugir do reflexo.",
		Action:  "Escreva três palavras que descrevem como você se sente agora.",
		Element: "Água",
	},
	{
		Title:   "A Chave de Prata",
		Meaning: "Uma porta fechada há muito tempo está pronta para abrir. A chave sempre esteve com você.",
		Action:  "Revisite um sonho antigo do seu diário e procure um símbolo recorrente.",
		Element: "Ar",
	},
	{
		Title:   "O Jardim Noturno",
		Meaning: "Coisas crescem no escuro que a luz do dia não alcança. Confie no que amadurece em silêncio.",
		Action:  "Antes de dormir, plante uma intenção: uma frase curta repetida três vezes.",
		Element: "Terra",
	},
	{
		Title:   "A Fênix Adormecida",
		Meaning: "Um ciclo termina para que outro comece. O que parece cinza é apenas o intervalo entre dois fogos.",
		Action:  "Liste algo que você está pronto para deixar ir esta noite.",
		Element: "Fogo",
	},
	{
		Title:   "O Farol Interior",
		Meaning: "Mesmo na tempestade existe um ponto fixo dentro de você. Navegue por ele.",
		Action:  "Faça três respirações profundas observando para onde sua mente quer ir.",
		Element: "Fogo",
	},
	{
		Title:   "A Ponte de Estrelas",
		Meaning: "Dois mundos se encontram: o que você vive e o que você sonha. A travessia pede passos pequenos.",
		Action:  "Faça um teste de realidade agora: olhe para as mãos e pergunte se está sonhando.",
		Element: "Ar",
	},
	{
		Title:   "O Poço dos Ecos",
		Meaning: "Uma emoção antiga retorna em nova forma. Ouça o eco sem cair no poço.",
		Action:  "Anote a primeira lembrança que surgir ao pensar no seu último sonho.",
		Element: "Água",
	},
	{
		Title:   "A Raiz Profunda",
		Meaning: "Sua força vem de mais longe do que você imagina. Ancorar não é parar.",
		Action:  "Sinta os pés no chão por um minuto antes de deitar.",
		Element: "Terra",
	},
}

// Draw returns the deterministic card for a calendar date key.
func Draw(date string) Card {
	h := fnv.New32a()
	h.Write([]byte(date))
	return Deck[h.Sum32()%uint32(len(Deck))]
}
