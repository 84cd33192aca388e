// Package config загружает и валидирует YAML-конфигурацию запуска.
//
// Конфигурация описывает упорядоченный список data managers и
// глобальные reference-ключи (genomes):
//
//	genomes:
//	  - dbkey: hg38
//	    name: Human Dec. 2013
//	data_managers:
//	  - id: data_manager_fetch_genome_dbkeys_all_fasta
//	    params:
//	      - dbkey: "{{ item }}"
//	    items: "{{ genomes }}"
//	    data_table_reload:
//	      - all_fasta
//
// Точная схема файла — внешний контракт: порядок data_managers задаёт
// порядок выполнения, params — упорядоченный список one-entry maps.
package config
