package services

import (
	"fmt"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

// Every user-visible string lives here, in Portuguese like the rest
// of the conversation.

const (
	msgPleaseWait = "Já tenho todos os teus dados. 🙏 Aguarda um momento enquanto preparamos o próximo passo."

	msgPaymentReminder = "Ainda não recebemos a confirmação do pagamento. 💳 Assim que pagares, responde com \"paguei\" ou envia o comprovativo."

	msgPlanGenerationFailed = "Não foi possível gerar o teu plano neste momento. 😔 Envia outra mensagem para tentarmos novamente."

	msgPlanLinkUnavailable = "O teu plano foi gerado, mas de momento não conseguimos obter o link do documento. A nossa equipa foi notificada."

	msgQuestionsInvite = "Se tiveres alguma dúvida sobre o teu plano, é só perguntar! 💬"

	msgAskRealQuestion = "Envia a tua pergunta sobre o plano e eu respondo já de seguida. 😊"

	msgQAApology = "Não consegui responder à tua pergunta neste momento. 🙏 Tenta novamente dentro de momentos."
)

func msgGreetingAskAge(name string) string {
	return fmt.Sprintf("Olá, %s! 👋 Sou o teu assistente pessoal e vou preparar um plano feito à tua medida. Para começar: qual é a tua idade?", name)
}

func msgPaymentRequest(name, link string) string {
	return fmt.Sprintf("Perfeito, %s! ✅ Para receberes o teu plano personalizado, conclui o pagamento aqui: %s\n\nQuando estiver feito, responde com \"paguei\".", name, link)
}

func msgPlanReady(url string) string {
	return fmt.Sprintf("O teu plano está pronto! 🎉 Podes descarregá-lo aqui: %s", url)
}

// fieldPrompts ask for the next missing intake field
var fieldPrompts = map[models.ProfileField]string{
	models.FieldAge:    "Qual é a tua idade?",
	models.FieldGoal:   "Qual é o teu objetivo? (ex: perder peso, ganhar massa muscular)",
	models.FieldGender: "Qual é o teu género?",
	models.FieldHeight: "Qual é a tua altura? (ex: 175 cm)",
	models.FieldWeight: "Qual é o teu peso? (ex: 70 kg)",
}

// userMessage maps an error kind to the text sent back to the chat
func userMessage(kind ErrorKind) string {
	switch kind {
	case KindValidation:
		return "Não conseguimos processar a tua mensagem. Tenta escrever de outra forma, por favor."
	case KindDependencyTimeout:
		return "O serviço está a demorar mais do que o esperado. ⏳ Tenta novamente dentro de momentos."
	case KindDependencyRejected:
		return "Não conseguimos concluir o pedido junto de um dos nossos serviços. Tenta novamente, por favor."
	default:
		return "Ocorreu um erro do nosso lado. 🙏 Tenta novamente dentro de momentos."
	}
}
