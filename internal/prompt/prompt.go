// Package prompt holds the static registry of digitization prompt templates.
// The front-end loads the list via GET /prompts; each /digitize request may
// select a template by id.
package prompt

// Prompt is an immutable registry entry. Text is the instruction sent to the
// vision model; it is never exposed over the API.
type Prompt struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Text        string `json:"-"`
}

// DefaultID identifies the faithful-transcription template used when a
// request names no prompt or an unknown one.
const DefaultID = "transcrever"

var registry = []Prompt{
	{
		ID:          "transcrever",
		Name:        "📝 Transcrever Fielmente",
		Description: "Transcreve o conteúdo da imagem como documentação, corrigindo apenas erros ortográficos.",
		Text: `
Você é um organizador de documentações técnicas focado no princípio KISS (Keep It Simple, Stupid).
Sua tarefa é digitalizar a imagem da anotação manuscrita e retornar EXCLUSIVAMENTE código Markdown válido.
NÃO inclua saudações, explicações ou qualquer texto fora do Markdown.

Regras de Transformação:
1. Estrutura Fiel e Direta: Mantenha a essência da anotação original. Priorize o uso de listas (bullet points) e frases curtas. PROIBIDO criar parágrafos longos ou textos elaborados que não estavam no papel.
2. Fidelidade Inteligente: Mantenha as palavras originais na medida do possível, mas aplique correções gramaticais e conecte frases fragmentadas para que a leitura fique fluida e didática.
3. Hierarquia Lógica: Transforme o assunto principal em um título '#'. Use '##' para agrupar subtópicos lógicos, mesmo que não estivessem explicitamente marcados como títulos no papel.
4. Interpretação Visual: Traduza setas (->, ↓) e conexões visuais como hierarquia nos bullet points (sub-itens) ou como pequenas palavras de conexão (ex: "logo", "resultando em"), sem descrever o desenho.
5. Destaque: Use **negrito** para palavras-chave para facilitar o escaneamento visual da documentação.
`,
	},
	{
		ID:          "expandir",
		Name:        "📖 Expandir Conteúdo",
		Description: "Expande notas curtas com mais contexto para facilitar a leitura.",
		Text: `
Você é um organizador de documentações técnicas focado em tornar notas curtas em conteúdo completo e didático.
Sua tarefa é digitalizar a imagem da anotação manuscrita e retornar EXCLUSIVAMENTE código Markdown válido.
NÃO inclua saudações, explicações ou qualquer texto fora do Markdown.

Regras de Transformação:
1. Expansão Contextual: As anotações podem estar curtas ou fragmentadas. Expanda o conteúdo adicionando contexto e explicações que tornem o texto fluido e fácil de ler, como se fosse um artigo ou tutorial.
2. Correção e Fluidez: Corrija erros ortográficos e gramaticais. Conecte ideias fragmentadas em parágrafos coesos.
3. Hierarquia Lógica: Transforme o assunto principal em um título '#'. Use '##' para subtópicos. Organize o fluxo de leitura de forma lógica.
4. Destaque: Use **negrito** para palavras-chave e conceitos importantes.
5. Fidelidade ao Tema: NÃO invente informações que não tenham relação com o que está escrito. Apenas expanda e contextualize o que já existe.
`,
	},
}

// List returns every registered prompt.
func List() []Prompt {
	out := make([]Prompt, len(registry))
	copy(out, registry)
	return out
}

// ByID looks up a prompt by id, falling back to the default template when
// the id is empty or unknown.
func ByID(id string) Prompt {
	for _, p := range registry {
		if p.ID == id {
			return p
		}
	}
	for _, p := range registry {
		if p.ID == DefaultID {
			return p
		}
	}
	return registry[0]
}
