package lexicon

// russian is the built-in English to Russian table.
var russian = [][2]string{
	// Basic words
	{"Error", "Ошибка"},
	{"Errors", "Ошибки"},
	{"Unknown", "Неизвестно"},
	{"Success", "Успешно"},
	{"Warning", "Предупреждение"},
	{"Info", "Информация"},
	{"Help", "Помощь"},
	{"Settings", "Настройки"},
	{"Menu", "Меню"},
	{"Close", "Закрыть"},
	{"Opened", "Открыто"},
	{"Closed", "Закрыто"},
	{"Enabled", "Включено"},
	{"Disabled", "Выключено"},
	{"ON", "ВКЛ"},
	{"OFF", "ВЫКЛ"},
	{"Proxy", "Прокси"},
	{"Keyboard", "Клавиатура"},
	{"Cookies", "Куки"},
	{"MediaInfo", "Информация о файле"},
	{"Subtitles", "Субтитры"},
	{"Subtitle", "Субтитр"},
	{"Language", "Язык"},
	{"Video", "Видео"},
	{"Audio", "Аудио"},
	{"Images", "Изображения"},
	{"Image", "Изображение"},
	{"Playlist", "Плейлист"},
	{"Playlists", "Плейлисты"},
	{"Group", "Группа"},
	{"Limits", "Лимиты"},
	{"Format", "Формат"},
	{"Formats", "Форматы"},
	{"Quality", "Качество"},
	{"Duration", "Длительность"},
	{"Title", "Название"},
	{"Direct", "Прямые"},
	{"Link", "Ссылка"},
	{"Links", "Ссылки"},
	{"Download", "Загрузка"},
	{"Downloading", "Загрузка"},
	{"Processing", "Обработка"},
	{"Completed", "Завершено"},
	{"Complete", "Завершено"},
	{"Please", "Пожалуйста"},
	{"Wait", "Подождите"},
	{"Try", "Попробуйте"},
	{"again", "ещё раз"},
	{"File", "Файл"},
	{"Files", "Файлы"},
	{"Size", "Размер"},
	{"Cache", "Кэш"},
	{"Sent", "Отправлено"},
	{"from", "из"},
	{"Checking", "Проверка"},
	{"Invalid", "Некорректно"},
	{"Valid", "Корректно"},
	{"Provide", "Укажите"},
	{"URL", "URL"},
	{"Warning:", "Внимание:"},
	{"Example", "Пример"},
	{"Examples", "Примеры"},
	{"Range", "Диапазон"},
	{"Usage", "Использование"},
	{"Notes", "Заметки"},
	{"Note", "Примечание"},
	{"Tests", "Тесты"},
	{"Test", "Тест"},
	{"Selected", "Выбрано"},
	{"Set", "Установлено"},
	{"Saved", "Сохранено"},
	{"Parameters", "Параметры"},
	{"Parameter", "Параметр"},
	{"Option", "Опция"},
	{"Options", "Опции"},
	{"Current value", "Текущее значение"},
	{"Quick commands", "Быстрые команды"},
	{"Search", "Поиск"},
	{"History", "История"},
	{"Account", "Аккаунт"},
	{"username", "имя пользователя"},

	// Bot-specific terms
	{"Live", "Прямой"},
	{"Stream", "Стрим"},
	{"Detected", "Обнаружен"},
	{"Downloading of ongoing", "Загрузка текущих"},
	{"infinite live streams", "бесконечных прямых трансляций"},
	{"is not allowed", "не разрешена"},
	{"Please wait for the stream", "Пожалуйста, дождитесь окончания стрима"},
	{"to end and try downloading", "и попробуйте загрузить"},
	{"again when", "снова, когда"},
	{"The stream duration", "Длительность стрима"},
	{"is known", "известна"},
	{"The stream has finished", "Стрим завершился"},
	{"Mobile", "Мобильный"},
	{"Activate", "Активировать"},
	{"Inline search helper", "Встроенный помощник поиска"},
	{"set language with", "установить язык с"},
	{"AUTO/TRANS", "АВТО/ПЕРЕВОД"},
	{"Current value", "Текущее значение"},
	{"Geo Bypass", "Гео Обход"},
	{"Embed Meta", "Встроить Мета"},
	{"Embed Thumb", "Встроить Миниатюру"},
	{"Write Thumb", "Записать Миниатюру"},
	{"Concurrent", "Параллельно"},
	{"Sleep Subs", "Ожидание Субтитров"},
	{"Legacy Connect", "Устаревшее Подключение"},
	{"Ignore Errors", "Игнорировать Ошибки"},
	{"Playlist Items", "Элементы Плейлиста"},
	{"Max Sleep", "Макс Ожидание"},
	{"Join Channel", "Присоединиться к Каналу"},
	{"Verification Required", "Требуется Проверка"},
	{"Policy Violation", "Нарушение Политики"},
	{"Impersonate", "Имперсонация"},
	{"Referer", "Реферер"},
	{"Username", "Имя Пользователя"},
	{"Password", "Пароль"},
	{"Clean", "Чистый"},
	{"TikTok", "ТикТок"},
	{"Instagram", "Инстаграм"},
	{"playlist", "плейлист"},
	{"Smart grouping", "Умная группировка"},
	{"Filters updated", "Фильтры обновлены"},
	{"db created", "база данных создана"},
	{"Bot started", "Бот запущен"},

	// Common phrases
	{"Error occurred", "Произошла ошибка"},
	{"Unknown error", "Неизвестная ошибка"},
	{"An error occurred", "Произошла ошибка"},
	{"Please wait", "Пожалуйста, подождите"},
	{"Processing...", "Обработка..."},
	{"Downloading media...", "Загрузка медиа..."},
	{"Download complete", "Загрузка завершена"},
	{"Invalid URL", "Некорректный URL"},
	{"Not enough disk space", "Недостаточно места на диске"},
	{"File size exceeds the limit", "Размер файла превышает лимит"},
	{"Direct link obtained", "Получена прямая ссылка"},
	{"Getting direct link...", "Получение прямой ссылки..."},
	{"Getting available formats...", "Получение доступных форматов..."},
	{"Invalid parameter", "Некорректный параметр"},
	{"Command executed", "Команда выполнена"},
	{"Menu closed", "Меню закрыто"},
	{"Access denied", "Доступ запрещён"},
	{"Please send a number", "Пожалуйста, отправьте число"},
	{"Please provide a valid URL", "Пожалуйста, укажите корректный URL"},
	{"Please send valid JSON", "Пожалуйста, отправьте корректный JSON"},
	{"Language set to", "Язык установлен:"},
	{"Subtitles are disabled", "Субтитры отключены"},
	{"Provide a valid URL", "Укажите корректный URL"},
}
