package uniscript

// scxExcerpt is an excerpt of ScriptExtensions-15.0.0.txt.
const scxExcerpt = `# ScriptExtensions-15.0.0.txt (excerpt)

0342          ; Grek
0345          ; Grek
0363..036F    ; Latn
0483          ; Cyrl Perm
0484          ; Cyrl Glag
0485..0486    ; Cyrl Latn
0487          ; Cyrl Glag
060C          ; Arab Nkoo Rohg Syrc Thaa Yezi
061B          ; Arab Nkoo Rohg Syrc Thaa Yezi
061F          ; Adlm Arab Nkoo Rohg Syrc Thaa Yezi
0640          ; Adlm Arab Mand Mani Ougr Phlp Rohg Sogd Syrc
064B..0655    ; Arab Syrc
0660..0669    ; Arab Thaa Yezi
0951          ; Beng Deva Gran Gujr Guru Knda Latn Mlym Orya Shrd Taml Telu Tirh
0952          ; Beng Deva Gran Gujr Guru Knda Latn Mlym Orya Taml Telu Tirh
0964          ; Beng Deva Dogr Gong Gonm Gran Gujr Guru Knda Mahj Mlym Nand Orya Sind Sinh Sylo Takr Taml Telu Tirh
0965          ; Beng Deva Dogr Gong Gonm Gran Gujr Guru Knda Limb Mahj Mlym Nand Orya Sind Sinh Sylo Takr Taml Telu Tirh
0966..096F    ; Deva Dogr Kthi Mahj
1CD0          ; Beng Deva Gran Knda
3001..3002    ; Bopo Hang Hani Hira Kana Yiii
3003          ; Bopo Hang Hani Hira Kana
3008..3011    ; Bopo Hang Hani Hira Kana Yiii
3013          ; Bopo Hang Hani Hira Kana
3014..301B    ; Bopo Hang Hani Hira Kana Yiii
301C..301F    ; Bopo Hang Hani Hira Kana
3030          ; Bopo Hang Hani Hira Kana
3037          ; Bopo Hang Hani Hira Kana
303C..303D    ; Hani Hira Kana
3099..309C    ; Hira Kana
30A0          ; Hira Kana
30FB          ; Bopo Hang Hani Hira Kana Yiii
30FC          ; Hira Kana
FF61..FF65    ; Bopo Hang Hani Hira Kana Yiii
FF70          ; Hira Kana
FF9E..FF9F    ; Hira Kana

# EOF
`
