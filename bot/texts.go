package bot

// Fixed user-facing texts, kept in pt-BR.
const (
	msgSelectSource      = "Selecione a moeda de ORIGEM:"
	msgSourceChosen      = "Moeda de origem: %s\nAgora, escolha a moeda de DESTINO:"
	msgDestinationChosen = "Moeda de destino: %s\nAgora, envie o valor que deseja converter."
	msgConversionResult  = "%s %s equivale a %s %s."
	msgGoodbye           = "Obrigado por usar o bot! Até a próxima."

	errSourceFirst     = "Erro: Selecione a moeda de origem primeiro usando /start."
	errCurrenciesFirst = "Erro: Selecione as moedas primeiro usando /start."
	errInvalidNumber   = "Erro: Insira um número válido."
	errQuoteFailed     = "Erro: Não foi possível obter a cotação agora. Tente novamente."

	btnNewConversion = "Nova conversão"
	btnEnd           = "Encerrar"

	noticeUnknownAction = "Ação não suportada"
	hintUnknownText     = "Não entendi. Use /start para iniciar uma conversão."
	hintUnknownDocument = "Envie apenas texto. Use /start para iniciar uma conversão."
)
