package prompt

// SystemPrompt frames every generation call. The model must answer with the
// bare result JSON so the parser can stay dumb.
const SystemPrompt = `Ты — опытный маркетолог казахстанского банка. Ты пишешь персональные push-уведомления
о банковских продуктах на основе реального поведения клиента.

Требования к уведомлению:
- Длина 180-220 символов, одно уведомление, без вариантов.
- Обращайся к клиенту по имени.
- Опирайся только на данные из запроса, ничего не выдумывай.
- Один призыв к действию в конце.
- Не используй КАПС и больше одного восклицательного знака.

Отвечай строго JSON-объектом без пояснений и без markdown:
{"client_code": <код клиента>, "product": "<название продукта>", "push_notification": "<текст уведомления>"}`

// humanizationInstructions is appended to every assembled prompt, after the
// product template.
const humanizationInstructions = `

ВАЖНО: Создай уведомление, которое:
- Звучит как личное сообщение от банка, а не автоматическая рассылка
- Использует конкретные детали из трат клиента
- Добавляет личные наблюдения («заметили», «видим», «видно»)
- Включает эмоциональные слова («удобно», «выгодно», «приятно»)
- Создаёт ощущение индивидуального подхода
- Избегает шаблонных фраз, звучит естественно
- Показывает понимание потребностей клиента

Примеры человечных фраз:
- «заметили, что вы очень активно...»
- «видим, что вы часто тратите на...»
- «видно по вашим тратам, что...»
- «обратили внимание, что у вас...»

Сделай уведомление живым и персональным!`

// responseFormatInstructions closes every assembled prompt.
const responseFormatInstructions = `

ФОРМАТ ОТВЕТА
Верни строго JSON без пояснений, без markdown и без обрамления в кавычки:
{"client_code": {{.client_code}}, "product": "<название продукта>", "push_notification": "<текст уведомления>"}`

const promptTravelCard = `Составь push-уведомление о продукте «Карта для путешествий».

О ПРОДУКТЕ
4% кешбэк на категорию «Путешествия», 4% кешбэк на такси, поезда и самолёты. Привилегии Visa Signature.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Поездок на такси в {{.month}}: {{.taxi_rides_count}} на сумму {{.taxi_spent_amount}} ₸
- Траты на путешествия: {{.travel_spent_amount}} ₸
- Траты на отели: {{.hotels_spent_amount}} ₸

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Сошлись на реальную активность клиента в такси и поездках.
- Посчитай примерную выгоду по кешбэку от указанных сумм.
- Заверши призывом вроде «Оформить карту» или «Открыть карту в приложении».`

const promptPremiumCard = `Составь push-уведомление о продукте «Премиальная карта».

О ПРОДУКТЕ
2-4% кешбэк на всё в зависимости от депозита, повышенный кешбэк на ювелирные изделия,
парфюмерию и рестораны. Бесплатные снятия в банкоматах и переводы.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Траты в ресторанах: {{.restaurants_spent}} ₸
- Траты на косметику и парфюмерию: {{.cosmetics_spent}} ₸
- Траты на ювелирные украшения: {{.jewelry_spent}} ₸
- Снятий в банкоматах: {{.atm_withdrawals_count}}
- Переводов: {{.transfers_count}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Подчеркни выгоду для клиента с высоким остатком и люкс-тратами.
- Упомяни бесплатные снятия или переводы, если клиент ими активно пользуется.
- Заверши сдержанным призывом вроде «Подключить карту».`

const promptCreditCard = `Составь push-уведомление о продукте «Кредитная карта».

О ПРОДУКТЕ
Кредитный лимит до 2 млн ₸, до 10% кешбэк в трёх выбранных категориях, рассрочка 3-24 мес.,
онлайн-сервисы без комиссии.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Топ-категория 1: {{.top_category_1}}
- Топ-категория 2: {{.top_category_2}}
- Топ-категория 3: {{.top_category_3}}
- Траты на онлайн-сервисы: {{.online_services_spent}} ₸
- Пользуется рассрочкой: {{.installment_payments}}
- Гасит кредитную карту: {{.cc_repayments}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Назови любимые категории клиента в нижнем регистре.
- Свяжи кешбэк до 10% именно с этими категориями.
- Заверши призывом вроде «Оформить карту».`

const promptFXExchange = `Составь push-уведомление о продукте «Обмен валют».

О ПРОДУКТЕ
Выгодный курс в приложении без комиссии 24/7, автоматическая покупка валюты при достижении
целевого курса.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Покупок валюты: {{.fx_buy_count}}
- Продаж валюты: {{.fx_sell_count}}
- Основная иностранная валюта: {{.main_foreign_currency}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Сошлись на валютную активность клиента и его основную валюту.
- Упомяни авто-покупку по целевому курсу.
- Заверши призывом вроде «Настроить обмен».`

const promptCashLoan = `Составь push-уведомление о продукте «Кредит наличными».

О ПРОДУКТЕ
Без залога и справок, онлайн-оформление, ставка 12-21%, досрочное погашение без штрафов.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Поступления в месяц: {{.monthly_inflow}} ₸
- Расходы в месяц: {{.monthly_outflow}} ₸
- Платежей по кредитам: {{.loan_payments_count}}
- Дней с низким остатком: {{.low_balance_days}}
- Признаки потребности в наличных: {{.cash_need_indicators}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Не дави и не пугай: предложи запас на крупные траты, а не спасение.
- Упомяни гибкие выплаты и досрочное погашение без штрафов.
- Заверши мягким призывом вроде «Узнать доступный лимит».`

const promptMultiCurrencyDeposit = `Составь push-уведомление о продукте «Депозит мультивалютный».

О ПРОДУКТЕ
Ставка 14,50%, поддержка KZT/USD/RUB/EUR, свободное пополнение и снятие.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Свободный остаток: {{.free_balance}} ₸
- Валютная активность (1-10): {{.fx_activity_score}}
- Траты за рубежом: {{.foreign_spending}} ₸
- Пополнений валютного вклада: {{.deposit_fx_topup_count}}
- Снятий с валютного вклада: {{.deposit_fx_withdraw_count}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Свяжи свободный остаток и валютную активность с удобством мультивалютного вклада.
- Упомяни свободное пополнение и снятие.
- Заверши призывом вроде «Открыть вклад».`

const promptSavingsDeposit = `Составь push-уведомление о продукте «Депозит сберегательный».

О ПРОДУКТЕ
Ставка 16,50%, защита KDIF, без пополнения и снятия до конца срока — максимальная ставка
за счёт отсутствия движения средств.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Стабильный остаток: {{.stable_balance}} ₸
- Волатильность трат (1-10): {{.spending_volatility}}
- Пополнений вклада: {{.deposit_topup_count}}
- Снятий с вклада: {{.deposit_withdraw_count}}
- Стабильность остатка (1-10): {{.balance_stability_score}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Сошлись на стабильный остаток клиента.
- Подчеркни максимальную ставку и защиту KDIF.
- Заверши призывом вроде «Открыть вклад».`

const promptAccumulativeDeposit = `Составь push-уведомление о продукте «Депозит накопительный».

О ПРОДУКТЕ
Ставка 15,50%, возможность пополнения, снятие недоступно — помогает дисциплинированно копить.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Регулярный остаток: {{.regular_balance}} ₸
- Периодические пополнения: {{.periodic_topups}}
- Частота пополнений: {{.topup_frequency}}
- Сберегательное поведение (1-10): {{.savings_behavior_score}}
- Небольшие регулярные суммы: {{.small_regular_amounts}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Похвали привычку клиента регулярно откладывать.
- Свяжи повышенную ставку с регулярными пополнениями.
- Заверши призывом вроде «Начать копить».`

const promptInvestments = `Составь push-уведомление о продукте «Инвестиции».

О ПРОДУКТЕ
0% комиссии на сделки, порог входа от 6 ₸, без комиссий в первый год.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Доступные средства: {{.available_funds}} ₸
- Пополнений брокерского счёта: {{.invest_in_count}}
- Выводов с брокерского счёта: {{.invest_out_count}}
- Интерес к инвестициям (1-10): {{.investment_interest_score}}
- Толерантность к риску (1-10): {{.risk_tolerance}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Подчеркни низкий порог входа и нулевые комиссии.
- Не обещай доходность.
- Заверши призывом вроде «Открыть счёт».`

const promptGoldBars = `Составь push-уведомление о продукте «Золотые слитки».

О ПРОДУКТЕ
Слитки 999,9 пробы, покупка и продажа в отделениях, хранение в сейфовых ячейках банка.

ДАННЫЕ КЛИЕНТА
- Код клиента: {{.client_code}}
- Имя: {{.name}}
- Статус: {{.status}}
- Возраст: {{.age}}
- Город: {{.city}}
- Средний остаток: {{.avg_monthly_balance_KZT}} ₸
- Высокая ликвидность средств: {{.high_liquidity}}
- Покупок золота: {{.gold_buy_count}}
- Продаж золота: {{.gold_sell_count}}
- Траты на ювелирные украшения: {{.jewelry_spent}} ₸
- Интерес к сохранению стоимости (1-10): {{.value_preservation_interest}}

ТОН
{{.age_tone}}
{{.status_tone}}

ПРАВИЛА
- Позиционируй слитки как защитный актив для диверсификации.
- Упомяни хранение в сейфовых ячейках.
- Заверши спокойным призывом вроде «Узнать подробнее».`
