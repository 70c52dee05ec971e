package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyCreators        = "creators"
	KeyRegister        = "register"
	KeyEdit            = "edit"
	KeyDelete          = "delete"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBack            = "back"
	KeySearch          = "search"
	KeyName            = "name"
	KeyDescription     = "description"
	KeyGender          = "gender"
	KeyGenderMale      = "gender_male"
	KeyGenderFemale    = "gender_female"
	KeyGenderOther     = "gender_other"
	KeyCurrentImage    = "current_image"
	KeyNewImage        = "new_image"
	KeyChooseImage     = "choose_image"
	KeyUploadImage     = "upload_image"
	KeyNoImage         = "no_image"
	KeyConfirmDelete   = "confirm_delete"
	KeyDeleteQuestion  = "delete_question"
	KeyLoading         = "loading"
	KeyNoCreators      = "no_creators"
	KeyNotFound        = "not_found"
	KeyNotFoundDetail  = "not_found_detail"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyTheme           = "theme"
	KeyServerURL       = "server_url"
	KeySettingsSaved   = "settings_saved"
	KeyRefresh         = "refresh"
	KeyUploading       = "uploading"
	KeyAttaching       = "attaching"
	KeySearchNoMatches = "search_no_matches"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Creator Desk",
		KeyCreators:        "Creators",
		KeyRegister:        "Register",
		KeyEdit:            "Edit",
		KeyDelete:          "Delete",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBack:            "Back",
		KeySearch:          "Search by name or description",
		KeyName:            "Name",
		KeyDescription:     "Description",
		KeyGender:          "Gender",
		KeyGenderMale:      "Male",
		KeyGenderFemale:    "Female",
		KeyGenderOther:     "Other",
		KeyCurrentImage:    "Current Image",
		KeyNewImage:        "New Image",
		KeyChooseImage:     "Choose Image",
		KeyUploadImage:     "Upload Image",
		KeyNoImage:         "No image",
		KeyConfirmDelete:   "Confirm Deletion",
		KeyDeleteQuestion:  "Delete this creator? This cannot be undone.",
		KeyLoading:         "Loading...",
		KeyNoCreators:      "No creators registered yet",
		KeyNotFound:        "Creator not found",
		KeyNotFoundDetail:  "The requested creator does not exist or was deleted.",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyTheme:           "Theme",
		KeyServerURL:       "Server URL",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRefresh:         "Refresh",
		KeyUploading:       "Uploading...",
		KeyAttaching:       "Attaching...",
		KeySearchNoMatches: "No creators match your search",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Creator Desk",
		KeyCreators:        "Авторы",
		KeyRegister:        "Зарегистрировать",
		KeyEdit:            "Изменить",
		KeyDelete:          "Удалить",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBack:            "Назад",
		KeySearch:          "Поиск по имени или описанию",
		KeyName:            "Имя",
		KeyDescription:     "Описание",
		KeyGender:          "Пол",
		KeyGenderMale:      "Мужской",
		KeyGenderFemale:    "Женский",
		KeyGenderOther:     "Другой",
		KeyCurrentImage:    "Текущее изображение",
		KeyNewImage:        "Новое изображение",
		KeyChooseImage:     "Выбрать изображение",
		KeyUploadImage:     "Загрузить изображение",
		KeyNoImage:         "Нет изображения",
		KeyConfirmDelete:   "Подтвердите удаление",
		KeyDeleteQuestion:  "Удалить этого автора? Это действие необратимо.",
		KeyLoading:         "Загрузка...",
		KeyNoCreators:      "Пока нет зарегистрированных авторов",
		KeyNotFound:        "Автор не найден",
		KeyNotFoundDetail:  "Запрошенный автор не существует или был удалён.",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyTheme:           "Тема",
		KeyServerURL:       "Адрес сервера",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyRefresh:         "Обновить",
		KeyUploading:       "Загрузка...",
		KeyAttaching:       "Привязка...",
		KeySearchNoMatches: "Ничего не найдено по запросу",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Creator Desk",
		KeyCreators:        "Criadores",
		KeyRegister:        "Registrar",
		KeyEdit:            "Editar",
		KeyDelete:          "Excluir",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBack:            "Voltar",
		KeySearch:          "Buscar por nome ou descrição",
		KeyName:            "Nome",
		KeyDescription:     "Descrição",
		KeyGender:          "Gênero",
		KeyGenderMale:      "Masculino",
		KeyGenderFemale:    "Feminino",
		KeyGenderOther:     "Outro",
		KeyCurrentImage:    "Imagem Atual",
		KeyNewImage:        "Nova Imagem",
		KeyChooseImage:     "Escolher Imagem",
		KeyUploadImage:     "Enviar Imagem",
		KeyNoImage:         "Sem imagem",
		KeyConfirmDelete:   "Confirmar Exclusão",
		KeyDeleteQuestion:  "Excluir este criador? Isso não pode ser desfeito.",
		KeyLoading:         "Carregando...",
		KeyNoCreators:      "Nenhum criador registrado ainda",
		KeyNotFound:        "Criador não encontrado",
		KeyNotFoundDetail:  "O criador solicitado não existe ou foi excluído.",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyTheme:           "Tema",
		KeyServerURL:       "URL do Servidor",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyRefresh:         "Atualizar",
		KeyUploading:       "Enviando...",
		KeyAttaching:       "Anexando...",
		KeySearchNoMatches: "Nenhum criador corresponde à busca",
	}
}
